package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Questionnaire Wizard ---
	wizardGroup := router.Group("/wizard")
	{
		wizardGroup.POST("/start", h.StartWizard)
		wizardGroup.GET("/:id", h.GetWizard)
		wizardGroup.POST("/:id/answer", h.AnswerWizard)
	}

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateProject)    // Generate from a session or inline settings
		projectGroup.GET("/:id/download", h.DownloadProject) // Download the zip archive
		projectGroup.GET("/:id/preview", h.PreviewProject)   // Static in-app preview document
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
