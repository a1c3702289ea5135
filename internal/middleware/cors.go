package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the cross-origin handler, or nil when features.cors_enabled
// is off. With no configured origins every origin is allowed.
func (m Middleware) CORS() gin.HandlerFunc {
	if !m.config.Features.CORSEnabled {
		return nil
	}

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"X-Total-Count", requestIDHeader},
		AllowCredentials: m.config.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(m.config.CORS.AllowedOrigins) == 0 {
		if cfg.AllowCredentials {
			cfg.AllowOriginFunc = func(string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	} else {
		cfg.AllowOrigins = m.config.CORS.AllowedOrigins
	}
	return cors.New(cfg)
}
