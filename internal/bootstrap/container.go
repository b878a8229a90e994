package bootstrap

import (
	"log"

	"ai-study-notebook-be/internal/config"
	"ai-study-notebook-be/internal/controller"
	"ai-study-notebook-be/internal/pkg/logger"
	"ai-study-notebook-be/internal/pkg/serverutils"
	"ai-study-notebook-be/internal/repository/unitofwork"
	"ai-study-notebook-be/internal/service"
	"ai-study-notebook-be/pkg/extractor"
	"ai-study-notebook-be/pkg/llm/factory"
	"ai-study-notebook-be/pkg/storage"
	studyctx "ai-study-notebook-be/pkg/studyai/context"
	"ai-study-notebook-be/pkg/studyai/persist"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	NotebookController controller.INotebookController
	UploadController   controller.IUploadController
	AiController       controller.IAiController

	// Shared middleware
	AuthMiddleware fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. AI Plumbing
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.OllamaModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.OllamaModel)

	aggregator := studyctx.NewAggregator(uowFactory)
	persister := persist.NewPersister(uowFactory)

	// 3. Storage & Extraction
	objectStore, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload storage: %v", err)
	}
	docExtractor := extractor.NewDocumentExtractor()

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret)
	notebookService := service.NewNotebookService(uowFactory)
	uploadService := service.NewUploadService(uowFactory, docExtractor, objectStore)
	aiService := service.NewAiService(llmProvider, aggregator, persister, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		NotebookController: controller.NewNotebookController(notebookService),
		UploadController:   controller.NewUploadController(uploadService),
		AiController:       controller.NewAiController(aiService),
		AuthMiddleware:     serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret),
		Logger:             sysLogger,
	}
}
