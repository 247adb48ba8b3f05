package handlers

import (
	"net/http"

	"raphtravel/utils"

	"github.com/gin-gonic/gin"
)

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Raph Travel Platform API"})
}

// HealthHandler handles GET /health with the latest collaborator snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"services": utils.GetHealthStatus(),
	})
}
