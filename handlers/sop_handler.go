package handlers

import (
	"GenAIStudio/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterSOPRoutes sets up the statement-of-purpose routes
func RegisterSOPRoutes(router *gin.RouterGroup, sopController *controllers.SOPController) {
	sopGroup := router.Group("/sop")
	{
		sopGroup.POST("/questions", sopController.ExtractQuestions)
		sopGroup.POST("/generate", sopController.GenerateSOP)
		sopGroup.POST("/download", sopController.DownloadSOP)
	}
}
