package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/httperror"
	"github.com/habitlock/verify-server/internal/metrics"
	"github.com/habitlock/verify-server/internal/middleware"
	"github.com/habitlock/verify-server/internal/verify"
)

// NewRouter assembles the HTTP router.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	verifyHandler *VerifyHandler,
	catalog *verify.Catalog,
	metricsStore *metrics.Store,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.CORS(cfg),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.APIKeyAuth(cfg),
	)

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		status, payload := httperror.Response(httperror.NewMethodNotAllowed())
		c.JSON(status, payload)
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperror.ErrorResponse{Error: "not found"})
	})

	RegisterHealthRoutes(router, cfg, catalog, metricsStore)
	verifyHandler.RegisterRoutes(router)

	return router
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
