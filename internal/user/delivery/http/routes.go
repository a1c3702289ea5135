package http

import (
	"inventory-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the public auth endpoints. Signup is rate limited per
// client address.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup/", mw.SignupRateLimit(), h.Signup)
		auth.POST("/token/verify/", h.VerifyToken)
		auth.POST("/token/refresh/", h.RefreshToken)
	}
}
