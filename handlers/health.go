package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuebook/utils"
)

// Health reports process liveness plus the latest provider reachability
// snapshot taken by the background monitor.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": utils.GetHealthStatus(),
	})
}
