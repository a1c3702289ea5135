package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-tracker/internal/model"
	"inventory-tracker/pkg/response"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "

	detailTokenNotValid = "Given token not valid for any token type"
	codeTokenNotValid   = "token_not_valid"
)

// AuthOrReadOnly lets safe methods through anonymously and requires a valid
// access token for everything else. A token that is sent must be valid even
// on reads. Authenticated callers get a model.Scope in the request context.
func (m Middleware) AuthOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c, isSafeMethod(c.Request.Method)) {
			return
		}
		c.Next()
	}
}

// authenticate returns false after aborting the request.
func (m Middleware) authenticate(c *gin.Context, anonymousOK bool) bool {
	header := c.GetHeader(authHeader)
	if header == "" {
		if anonymousOK {
			return true
		}
		c.Header("WWW-Authenticate", `Bearer realm="api"`)
		response.Unauthorized(c, "")
		return false
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		m.rejectToken(c)
		return false
	}

	claims, err := m.jwtManager.VerifyAccess(strings.TrimSpace(token))
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.authenticate: %v", err)
		m.rejectToken(c)
		return false
	}

	ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: claims.UserID})
	c.Request = c.Request.WithContext(ctx)
	return true
}

func (m Middleware) rejectToken(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Resp{
		Detail: detailTokenNotValid,
		Code:   codeTokenNotValid,
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
