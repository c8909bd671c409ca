package builder

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/api"
	catalogapi "github.com/ifab-lab/workshop-backend/internal/api/catalog"
	sessionapi "github.com/ifab-lab/workshop-backend/internal/api/session"
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/integration/asr"
	"github.com/ifab-lab/workshop-backend/internal/integration/llm"
	"github.com/ifab-lab/workshop-backend/internal/pkg/validator"
	"github.com/ifab-lab/workshop-backend/internal/report"
	"github.com/ifab-lab/workshop-backend/internal/repository"
	"github.com/ifab-lab/workshop-backend/internal/usecase/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Load the question catalog, compiled-in defaults unless overridden
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Question catalog loaded", zap.Int("questions", cat.TotalQuestions()))

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(cfg.SessionTTL, cfg.SessionCleanupInterval)
	logger.Info("Session repository initialized",
		zap.Duration("ttl", cfg.SessionTTL),
		zap.Duration("cleanup_interval", cfg.SessionCleanupInterval),
	)

	// Initialize external service connectors (with mock support)
	var llmConnector session.LLMConnector
	var asrConnector session.ASRConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		llmConnector = llm.NewMockConnector(logger)
		asrConnector = asr.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
		asrConnector = asr.NewConnector(cfg.ASRConnectorCfg, logger)
	}

	// Initialize validators
	fileValidator := validator.NewValidator(cfg.FileUploadCfg)

	// Initialize report factory
	reportFactory := report.NewFactory(cfg.ReportCfg)

	// Initialize use cases
	sessionUC := session.NewUsecase(
		sessionRepo,
		cat,
		fileValidator,
		llmConnector,
		asrConnector,
		reportFactory,
		cfg.LLMConnectorCfg,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	sessionHandler := sessionapi.NewHandler(sessionUC, fileValidator, cat)
	catalogHandler := catalogapi.NewHandler(cat)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(sessionHandler, catalogHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis generation is blocking
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// loadCatalog reads the catalog override file when it exists, otherwise the
// compiled-in defaults.
func loadCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if _, err := os.Stat(cfg.CatalogPath); err != nil {
		logger.Info("Catalog file not found, using built-in questions",
			zap.String("path", cfg.CatalogPath),
		)
		return catalog.Default(), nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded from file", zap.String("path", cfg.CatalogPath))
	return cat, nil
}

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
