package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-tracker/pkg/database"
	"inventory-tracker/pkg/response"
)

// healthCheck pings the database with a trivial query.
// @Summary Health Check
// @Description Reports whether the API can reach its database.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "status ok, db true"
// @Failure 500 {object} map[string]interface{} "status error with db_error"
// @Router /api/health/ [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := database.Ping(ctx, srv.db); err != nil {
		srv.l.Errorf(ctx, "healthCheck: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "error",
			"db_error": err.Error(),
		})
		return
	}
	response.OK(c, gin.H{
		"status": "ok",
		"db":     true,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /api/live/ [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
