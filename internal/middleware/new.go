package middleware

import (
	"inventory-tracker/config"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	config      *config.Config
	signupLimit *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		config:      cfg,
		signupLimit: newRateLimiter(cfg.RateLimit.SignupPerMin),
	}
}
