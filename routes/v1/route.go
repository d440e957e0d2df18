package route

import (
	"net/http"
	"time"

	"GenAIStudio/config/environment"
	"GenAIStudio/controllers"
	"GenAIStudio/handlers"
	"GenAIStudio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers groups the feature controllers mounted under /v1.
type Controllers struct {
	Ad  *controllers.AdController
	SOP *controllers.SOPController
}

// NewRouter builds the gin engine with the middleware chain and all routes.
func NewRouter(cfg *environment.Config, log *zap.Logger, c Controllers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.ErrorHandlerMiddleware(log))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes))

	RegisterRoutes(r, c)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, c Controllers) {
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAdRoutes(v1Routes, c.Ad)
		handlers.RegisterSOPRoutes(v1Routes, c.SOP)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
