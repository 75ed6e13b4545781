package di

import (
	"fmt"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/handler"
	"github.com/habitlock/verify-server/internal/logging"
	"github.com/habitlock/verify-server/internal/metrics"
	"github.com/habitlock/verify-server/internal/server"
	"github.com/habitlock/verify-server/internal/verify"
)

// InitializeApp wires the application dependencies.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metricsStore := metrics.NewStore()

	geminiClient, err := gemini.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	catalog, err := verify.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("prompt catalog: %w", err)
	}

	verifyHandler := handler.NewVerifyHandler(cfg, geminiClient, catalog, logger)
	router := handler.NewRouter(cfg, logger, verifyHandler, catalog, metricsStore)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg), nil
}
