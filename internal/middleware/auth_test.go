package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/config"
)

func authTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{HTTPAuth: config.HTTPAuthConfig{APIKey: apiKey}}

	router := gin.New()
	router.Use(APIKeyAuth(cfg))
	router.POST("/api/verify/bed", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestAPIKeyAuthRejectsMissingKey(t *testing.T) {
	router := authTestRouter("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bed", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAPIKeyAuthAcceptsHeader(t *testing.T) {
	router := authTestRouter("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bed", nil)
	req.Header.Set("X-API-Key", "secret")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAPIKeyAuthAcceptsBearer(t *testing.T) {
	router := authTestRouter("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bed", nil)
	req.Header.Set("Authorization", "Bearer secret")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAPIKeyAuthRejectsWrongKey(t *testing.T) {
	router := authTestRouter("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bed", nil)
	req.Header.Set("X-API-Key", "wrong")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAPIKeyAuthSkipsHealth(t *testing.T) {
	router := authTestRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for unprotected path, got %d", resp.Code)
	}
}

func TestAPIKeyAuthNoopWhenUnset(t *testing.T) {
	router := authTestRouter("")

	req := httptest.NewRequest(http.MethodPost, "/api/verify/bed", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", resp.Code)
	}
}
