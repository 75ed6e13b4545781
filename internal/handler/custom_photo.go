package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/gemini"
	"github.com/habitlock/verify-server/internal/verify"
)

func (h *VerifyHandler) handleCustomPhoto(c *gin.Context) {
	var req CustomPhotoVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	image, ok := h.decodeImage(c, verify.KindCustomPhoto, req.ImageBase64, "")
	if !ok {
		return
	}

	params := verify.Params{
		HabitName:        req.HabitName,
		Criteria:         req.AIPrompt,
		AllowScreenshots: req.AllowsScreenshots,
	}

	verdict, ok := h.run(c, verify.KindCustomPhoto, []gemini.Image{image}, params)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CustomPhotoVerdictResponse{
		IsVerified:      verdict.Passed,
		DetectedSubject: verdict.DetectedSubject,
		Feedback:        verdict.Feedback,
	})
}
