package di

import (
	"log/slog"
	"net/http"

	"github.com/habitlock/verify-server/internal/config"
)

// App bundles the running application's components.
type App struct {
	Server *http.Server
	Logger *slog.Logger
	Config *config.Config
}

// NewApp creates the App aggregate.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		Server: server,
		Logger: logger,
		Config: cfg,
	}
}
