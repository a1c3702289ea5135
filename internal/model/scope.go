package model

import "context"

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID uint64
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope and whether one was set.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
