package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/verify"
)

func (h *VerifyHandler) handleCustomVideo(c *gin.Context) {
	var req CustomVideoVerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	images, ok := h.decodeFrames(c, verify.KindCustomVideo, req.Frames)
	if !ok {
		return
	}

	params := verify.Params{
		HabitName:       req.HabitName,
		Criteria:        req.AIPrompt,
		DurationSeconds: req.Duration,
		FrameCount:      len(req.Frames),
	}

	verdict, ok := h.run(c, verify.KindCustomVideo, images, params)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CustomVideoVerdictResponse{
		IsVerified:     verdict.Passed,
		DetectedAction: verdict.DetectedAction,
		Confidence:     verdict.Confidence,
		Feedback:       verdict.Feedback,
	})
}
