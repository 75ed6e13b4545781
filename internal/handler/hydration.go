package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

func (h *VerifyHandler) handleHydration(c *gin.Context) {
	var req PhotoVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	image, ok := h.decodeImage(c, verify.KindHydration, req.ImageBase64, "")
	if !ok {
		return
	}

	verdict, ok := h.run(c, verify.KindHydration, []gemini.Image{image}, verify.Params{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, HydrationVerdictResponse{
		IsWater:         verdict.Passed,
		DetectedSubject: verdict.DetectedSubject,
		Feedback:        verdict.Feedback,
	})
}
