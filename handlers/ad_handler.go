package handlers

import (
	"GenAIStudio/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAdRoutes(router *gin.RouterGroup, adController *controllers.AdController) {
	adGroup := router.Group("/ads")
	{
		adGroup.GET("/objectives", adController.GetObjectives)
		adGroup.POST("/strategy", adController.GenerateStrategy)
	}
}
