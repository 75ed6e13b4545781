package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/httperror"
)

// APIKeyAuth gates the verification endpoints behind an inbound API key.
// With no key configured the middleware is a no-op. Health and metrics
// paths are never protected.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	expected := ""
	if cfg != nil {
		expected = strings.TrimSpace(cfg.HTTPAuth.APIKey)
	}

	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}

		if !shouldProtectPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		provided := extractAPIKey(c)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			status, payload := httperror.Response(httperror.NewUnauthorized())
			c.AbortWithStatusJSON(status, payload)
			return
		}

		c.Next()
	}
}

func shouldProtectPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func extractAPIKey(c *gin.Context) string {
	if c == nil {
		return ""
	}

	value := strings.TrimSpace(c.GetHeader("X-API-Key"))
	if value != "" {
		return value
	}

	authorization := strings.TrimSpace(c.GetHeader("Authorization"))
	if after, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
