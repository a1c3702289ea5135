package httpserver

import (
	"context"

	"inventory-tracker/internal/middleware"
	"inventory-tracker/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.appConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())

	ctx := context.Background()
	if cors := mw.CORS(); cors != nil {
		srv.gin.Use(cors)
		srv.l.Infof(ctx, "CORS enabled for origins %v", srv.appConfig.CORS.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS disabled")
	}

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	api := srv.gin.Group(srv.basePath)
	api.GET("/health/", srv.healthCheck)
	api.GET("/live/", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under the base path.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group(srv.basePath)

	if err := srv.setupStockDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupUserDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
