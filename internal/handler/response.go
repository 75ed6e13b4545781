package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habitlock/verify-server/internal/httperror"
	"github.com/habitlock/verify-server/internal/middleware"
)

// writeError emits the public error body for err.
func writeError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err)
	c.JSON(status, payload)
}

// bindJSON parses the request body; on failure it writes a 400 and reports
// false. Binding failures never reach the upstream model.
func bindJSON(c *gin.Context, out any) bool {
	if c == nil {
		return false
	}
	if err := c.ShouldBindJSON(out); err != nil {
		writeError(c, err)
		return false
	}
	return true
}

// logFailure records the distinguishing detail the public response omits.
func (h *VerifyHandler) logFailure(c *gin.Context, kind string, err error) {
	apiErr := httperror.FromError(err)
	h.logger.Error(
		"verification_failed",
		"request_id", middleware.GetRequestID(c),
		"kind", kind,
		"code", string(apiErr.Code),
		"err", err,
	)
}
