package handlers

import (
	"net/http"

	"lexconnect/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if status.CheckedAt.IsZero() || status.Healthy() {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status})
}
