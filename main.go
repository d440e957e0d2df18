package main

import (
	"GenAIStudio/config/environment"
	"GenAIStudio/config/logger"
	"GenAIStudio/controllers"
	v1 "GenAIStudio/routes/v1"
	"GenAIStudio/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := environment.Load()

	level := "info"
	if cfg != nil {
		level = cfg.LogLevel
	}
	log, err := logger.New(level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// no credential, no service
	if cfgErr != nil {
		log.Fatal("invalid configuration", zap.Error(cfgErr))
	}

	gin.SetMode(cfg.GinMode)

	completion := services.NewOpenAIService(cfg.OpenAI, log.Named("openai"))
	documents, err := services.NewDocumentService(cfg.ExtractCacheSize, log.Named("documents"))
	if err != nil {
		log.Fatal("init document service", zap.Error(err))
	}

	r := v1.NewRouter(cfg, log, v1.Controllers{
		Ad:  controllers.NewAdController(services.NewAdService(completion, log.Named("ads"))),
		SOP: controllers.NewSOPController(services.NewSOPService(documents, completion, log.Named("sop"))),
	})

	log.Info("server starting", zap.String("addr", ":"+cfg.Port), zap.String("model", cfg.OpenAI.Model))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
