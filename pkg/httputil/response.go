package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

// RequestIDKey is the gin context key holding the request correlation id.
const RequestIDKey = "request_id"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

var codeNames = map[apperrors.ErrorCode]string{
	apperrors.ErrNotFound:     "NOT_FOUND",
	apperrors.ErrBadRequest:   "BAD_REQUEST",
	apperrors.ErrValidation:   "VALIDATION_ERROR",
	apperrors.ErrUnauthorized: "UNAUTHORIZED",
	apperrors.ErrForbidden:    "FORBIDDEN",
	apperrors.ErrConflict:     "CONFLICT",
	apperrors.ErrUnavailable:  "UNAVAILABLE",
	apperrors.ErrInternal:     "INTERNAL_ERROR",
}

// RespondWithSuccess writes data as a bare JSON body.
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// RespondWithError maps err onto a status code and ErrorResponse body.
// Internal failures are logged and their details withheld from the client.
func RespondWithError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := asAppError(err); ok {
		status = appErr.StatusCode()
		if code != apperrors.ErrInternal {
			message = appErr.Message
		}
	}

	traceID := c.GetString(RequestIDKey)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", traceID).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    codeNames[code],
		Message: message,
		TraceID: traceID,
	})
}

func asAppError(err error) (*apperrors.AppError, bool) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
