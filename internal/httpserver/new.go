package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inventory-tracker/config"
	"inventory-tracker/pkg/datemath"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/password"
	"inventory-tracker/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	basePath    string

	// Shared infrastructure
	db         *gorm.DB
	jwtManager scope.Manager
	dates      *datemath.Parser
	hasher     password.Hasher
	policy     *password.Policy
	appConfig  *config.Config
	now        func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	BasePath    string

	DB             *gorm.DB
	JWTManager     scope.Manager
	DateParser     *datemath.Parser
	Hasher         password.Hasher
	PasswordPolicy *password.Policy

	// AppConfig feeds the middleware (CORS, rate limits).
	AppConfig *config.Config

	// Now overrides the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		basePath:    cfg.BasePath,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		dates:       cfg.DateParser,
		hasher:      cfg.Hasher,
		policy:      cfg.PasswordPolicy,
		appConfig:   cfg.AppConfig,
		now:         cfg.Now,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.hasher == nil {
		return errors.New("password hasher is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	return nil
}
