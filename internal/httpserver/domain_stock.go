package httpserver

import (
	"context"

	stockHTTP "inventory-tracker/internal/stock/delivery/http"
	stockRepo "inventory-tracker/internal/stock/repository/gormdb"
	stockUC "inventory-tracker/internal/stock/usecase"
	"inventory-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupStockDomain initializes the stock domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupStockDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := stockRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := stockUC.New(repo, srv.l, srv.dates, srv.now)

	// 3. HTTP Handler
	h := stockHTTP.New(srv.l, uc)

	// 4. Routes: registers <base>/items/
	stockHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Stock domain registered")
	return nil
}
