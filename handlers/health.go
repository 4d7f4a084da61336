package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewHealthHandler reports service liveness.
func NewHealthHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Scenic Inn Booking Beta API",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	}
}
