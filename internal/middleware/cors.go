package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/config"
)

// CORS permits cross-origin calls from the mobile app's webview and tooling.
// With no origins configured, any origin is allowed. Preflight OPTIONS
// requests are answered with 204 by the cors handler.
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-API-Key", RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}

	if cfg == nil || len(cfg.CORS.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	return cors.New(corsConfig)
}
