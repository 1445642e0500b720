package bootstrap

import (
	"log"

	"streaminghub-be/internal/config"
	"streaminghub-be/internal/controller"
	"streaminghub-be/internal/pkg/logger"
	"streaminghub-be/internal/repository/implementation"
	"streaminghub-be/internal/service"
	"streaminghub-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController           controller.IChatController
	RecommendationController controller.IRecommendationController
	MovieController          controller.IMovieController

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:       cfg.Ai.LLMProvider,
		Model:          cfg.Ai.LLMModel,
		OpenAIAPIKey:   cfg.Ai.OpenAIAPIKey,
		OpenAIBaseURL:  cfg.Ai.OpenAIBaseURL,
		OllamaBaseURL:  cfg.Ai.OllamaBaseURL,
		HuggingFaceKey: cfg.Ai.HuggingFaceKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Repositories
	movieRepo := implementation.NewMovieRepository(db)

	// 4. Services
	chatService := service.NewChatService(movieRepo, llmProvider, cfg.Catalog.ChatLimit, sysLogger)
	recommendationService := service.NewRecommendationService(movieRepo, llmProvider, sysLogger)
	movieService := service.NewMovieService(movieRepo, cfg.Catalog.ListLimit)

	return &Container{
		ChatController:           controller.NewChatController(chatService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		MovieController:          controller.NewMovieController(movieService),
		Logger:                   sysLogger,
	}
}
