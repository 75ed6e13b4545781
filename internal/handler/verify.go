package handler

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/config"
	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/httperror"
	"github.com/habitlock/verify-server/internal/imagex"
	"github.com/habitlock/verify-server/internal/verify"
)

// VerifyHandler serves the verification endpoints, one per kind. Stateless:
// every request renders a prompt, makes exactly one upstream call, and maps
// the reply onto the kind's verdict schema.
type VerifyHandler struct {
	cfg     *config.Config
	client  gemini.Vision
	catalog *verify.Catalog
	logger  *slog.Logger
}

// NewVerifyHandler wires the verification pipeline.
func NewVerifyHandler(cfg *config.Config, client gemini.Vision, catalog *verify.Catalog, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{cfg: cfg, client: client, catalog: catalog, logger: logger}
}

// RegisterRoutes mounts one POST route per verification kind.
func (h *VerifyHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/verify")
	api.POST("/bed", h.handleBed)
	api.POST("/sunlight", h.handleSunlight)
	api.POST("/hydration", h.handleHydration)
	api.POST("/custom-photo", h.handleCustomPhoto)
	api.POST("/custom-video", h.handleCustomVideo)
}

// run executes the shared pipeline: render prompt, call upstream once,
// extract the JSON span, parse the verdict. The bool reports whether a
// response was already written.
func (h *VerifyHandler) run(c *gin.Context, kind verify.Kind, images []gemini.Image, params verify.Params) (*verify.Verdict, bool) {
	promptText, err := h.catalog.Render(kind, params)
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	maxTokens, err := h.catalog.MaxOutputTokens(kind)
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	raw, err := h.client.Verify(c.Request.Context(), gemini.Request{
		Images:          images,
		Prompt:          promptText,
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	span, err := verify.ExtractJSON(raw)
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	verdict, err := verify.Parse(kind, span)
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	return verdict, true
}

// decodeImage turns one base64 payload into an upstream image part. Decode
// failures are request-invalid: no upstream call is made for garbage input.
func (h *VerifyHandler) decodeImage(c *gin.Context, kind verify.Kind, payload string, label string) (gemini.Image, bool) {
	decoded, err := imagex.Decode(payload, h.cfg.Image.MaxBytes)
	if err != nil {
		h.logFailure(c, kind.String(), err)
		writeError(c, httperror.NewRequestInvalid("image payload is not a valid base64 image", err))
		return gemini.Image{}, false
	}
	return gemini.Image{Data: decoded.Data, MIME: decoded.MIME, Label: label}, true
}

// decodeFrames decodes an ordered frame list, labeling each with its
// chronological index so the model can reason about progression.
func (h *VerifyHandler) decodeFrames(c *gin.Context, kind verify.Kind, payloads []string) ([]gemini.Image, bool) {
	if maxFrames := h.cfg.Image.MaxFrames; maxFrames > 0 && len(payloads) > maxFrames {
		err := httperror.NewRequestInvalid(fmt.Sprintf("too many frames: limit is %d", maxFrames), nil)
		h.logFailure(c, kind.String(), err)
		writeError(c, err)
		return nil, false
	}

	images := make([]gemini.Image, 0, len(payloads))
	for i, payload := range payloads {
		image, ok := h.decodeImage(c, kind, payload, fmt.Sprintf("Frame %d:", i+1))
		if !ok {
			return nil, false
		}
		images = append(images, image)
	}
	return images, true
}
