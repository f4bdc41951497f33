package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/ai-guide", handler.Ask) // POST /api/ai-guide
	}
}
