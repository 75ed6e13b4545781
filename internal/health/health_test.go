package health

import (
	"testing"

	"github.com/habitlock/verify-server/internal/config"
)

func TestCollect(t *testing.T) {
	cfg := &config.Config{Gemini: config.GeminiConfig{Model: "gemini-test"}}

	payload := Collect(cfg)
	if payload.Status != "ok" {
		t.Fatalf("unexpected status: %s", payload.Status)
	}
	if payload.Model != "gemini-test" {
		t.Fatalf("unexpected model: %s", payload.Model)
	}
	if payload.UptimeSeconds < 0 {
		t.Fatalf("negative uptime: %d", payload.UptimeSeconds)
	}

	if Collect(nil).Model != "" {
		t.Fatalf("expected empty model for nil config")
	}
}
