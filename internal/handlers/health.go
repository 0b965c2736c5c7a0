package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute exposes the static health check both services share.
func RegisterHealthRoute(r *gin.Engine, serviceName string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
}
