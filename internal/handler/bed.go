package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

func (h *VerifyHandler) handleBed(c *gin.Context) {
	var req PhotoVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	image, ok := h.decodeImage(c, verify.KindBed, req.ImageBase64, "")
	if !ok {
		return
	}

	verdict, ok := h.run(c, verify.KindBed, []gemini.Image{image}, verify.Params{})
	if !ok {
		return
	}

	c.JSON(http.StatusOK, BedVerdictResponse{
		IsMade:          verdict.Passed,
		DetectedSubject: verdict.DetectedSubject,
		Feedback:        verdict.Feedback,
	})
}
