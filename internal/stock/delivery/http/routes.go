package http

import (
	"inventory-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Reads are public; writes need a valid access token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.AuthOrReadOnly())
	{
		items.GET("/", h.List)
		items.POST("/", h.Create)
		items.GET("/low-stock/", h.LowStock)
		items.GET("/:id/", h.Detail)
		items.PUT("/:id/", h.Update)
		items.PATCH("/:id/", h.Patch)
		items.DELETE("/:id/", h.Delete)
	}
}
