package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/health"
	"github.com/habitlock/verify-server/internal/metrics"
	"github.com/habitlock/verify-server/internal/verify"
)

// ModelConfigResponse echoes the effective upstream configuration.
type ModelConfigResponse struct {
	Model           string         `json:"model"`
	Temperature     float64        `json:"temperature"`
	TimeoutSeconds  int            `json:"timeout_seconds"`
	MaxOutputTokens map[string]int `json:"max_output_tokens"`
}

// RegisterHealthRoutes mounts liveness, config echo, stats, and Prometheus
// metrics.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, catalog *verify.Catalog, metricsStore *metrics.Store) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	router.GET("/health/models", func(c *gin.Context) {
		budgets := make(map[string]int, len(verify.Kinds()))
		for _, kind := range verify.Kinds() {
			if tokens, err := catalog.MaxOutputTokens(kind); err == nil {
				budgets[kind.String()] = tokens
			}
		}
		c.JSON(http.StatusOK, ModelConfigResponse{
			Model:           cfg.Gemini.Model,
			Temperature:     cfg.Gemini.Temperature,
			TimeoutSeconds:  cfg.Gemini.TimeoutSeconds,
			MaxOutputTokens: budgets,
		})
	})

	router.GET("/health/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, metricsStore.Snapshot())
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
