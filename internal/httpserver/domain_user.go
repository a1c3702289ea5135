package httpserver

import (
	"context"

	"inventory-tracker/internal/middleware"
	userHTTP "inventory-tracker/internal/user/delivery/http"
	userRepo "inventory-tracker/internal/user/repository/gormdb"
	userUC "inventory-tracker/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// setupUserDomain wires signup and the token endpoints.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(repo, srv.l, srv.hasher, srv.policy, srv.jwtManager)
	h := userHTTP.New(srv.l, uc)

	// registers <base>/auth/...
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
