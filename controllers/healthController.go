package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaushalkrsna1602/Samay-Sahayak/config"
)

// HealthCheck is the liveness probe. It also exposes the database
// connection state so the outage surface is queryable, not just logged.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "Samay Sahayak Backend is running",
			"database": string(config.State()),
		})
	}
}
