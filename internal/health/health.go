package health

import (
	"time"

	"github.com/habitlock/verify-server/internal/config"
)

var startedAt = time.Now()

// Payload is the liveness response body.
type Payload struct {
	Status        string `json:"status"`
	Model         string `json:"model"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Collect reports shallow liveness. The gateway holds no stateful
// dependencies, so there is nothing deeper to probe without spending an
// upstream call.
func Collect(cfg *config.Config) Payload {
	model := ""
	if cfg != nil {
		model = cfg.Gemini.Model
	}
	return Payload{
		Status:        "ok",
		Model:         model,
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
	}
}
