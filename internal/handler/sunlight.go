package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

func (h *VerifyHandler) handleSunlight(c *gin.Context) {
	var req PhotoVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	image, ok := h.decodeImage(c, verify.KindSunlight, req.ImageBase64, "")
	if !ok {
		return
	}

	verdict, ok := h.run(c, verify.KindSunlight, []gemini.Image{image}, verify.Params{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SunlightVerdictResponse{
		IsOutside:       verdict.Passed,
		DetectedSubject: verdict.DetectedSubject,
		Feedback:        verdict.Feedback,
	})
}
