package routes

import (
	"github.com/gin-gonic/gin"

	"speech2text/internal/api/v1/handlers"
	"speech2text/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptService services.TranscriptService
}

// RegisterRoutes registers the transcription API routes
func RegisterRoutes(router *gin.Engine, container *ServiceContainer) {
	transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService)

	router.POST("/transcribe/", transcriptHandler.Transcribe)

	transcripts := router.Group("/transcripts")
	{
		transcripts.GET("/", transcriptHandler.List)
		transcripts.GET("/:id", transcriptHandler.Get)
	}
}
