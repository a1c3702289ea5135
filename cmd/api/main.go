package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-tracker/config"
	_ "inventory-tracker/docs" // Swagger docs
	"inventory-tracker/internal/httpserver"
	stockRepo "inventory-tracker/internal/stock/repository/gormdb"
	userRepo "inventory-tracker/internal/user/repository/gormdb"
	"inventory-tracker/pkg/database"
	"inventory-tracker/pkg/datemath"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/password"
	"inventory-tracker/pkg/scope"
)

// @title       Inventory Tracker API
// @description Item stock tracking with expiry status, user signup and JWT tokens.
// @version     1
// @host        localhost:8000
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnf(ctx, "Failed to close database: %v", err)
		}
	}()
	logger.Infof(ctx, "Database driver: %s", cfg.Database.Driver)

	if cfg.Database.AutoMigrate {
		if err := stockRepo.Migrate(db); err != nil {
			logger.Fatalf(ctx, "Failed to migrate items: %v", err)
		}
		if err := userRepo.Migrate(db); err != nil {
			logger.Fatalf(ctx, "Failed to migrate users: %v", err)
		}
		logger.Info(ctx, "Database schema migrated")
	}

	// 4. Auth & date helpers
	jwtManager, err := scope.New(scope.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create JWT manager: %v", err)
	}

	dateParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		BasePath:       cfg.HTTPServer.BasePath,
		DB:             db,
		JWTManager:     jwtManager,
		DateParser:     dateParser,
		Hasher:         password.NewBcryptHasher(cfg.Password.BcryptCost),
		PasswordPolicy: password.NewPolicy(cfg.Password.MinLength, cfg.Password.MaxSimilarity),
		AppConfig:      cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
