package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotelens/internal/domain/dto"
	"github.com/guttosm/quotelens/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON response when
// the handler did not write one itself.
//
// An attached dto.ErrorResponse is sent as-is with the current status (500
// when none was set); any other error becomes a generic 500 and is only logged.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		c.JSON(status, resp)
		return
	}

	logger.L().Error().
		Err(last).
		Str("request_id", GetRequestID(c)).
		Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
}

// AbortWithError aborts the request with status and a dto.ErrorResponse body.
// err is recorded on the context for logging; its message is only exposed to
// the client for 4xx statuses.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	var details error
	if status < http.StatusInternalServerError {
		details = err
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, details))
}
