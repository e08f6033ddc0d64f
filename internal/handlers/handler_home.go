package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports that the API is reachable with a valid session.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Travel budget API v1"})
}

// registerHomeRoutes registers the authenticated '/ping' route
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/ping", getHome)
}
