package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

type bookingBody struct {
	PatientName         string `json:"patientName"`
	AppointmentDateTime string `json:"appointmentDateTime"`
}

func bindBody(body string) error {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bookingBody
	return c.ShouldBindJSON(&req)
}

func TestBindError(t *testing.T) {
	tests := []struct {
		name string
		body string
		code apperrors.ErrorCode
		msg  string
	}{
		{"type mismatch", `{"patientName":"Jane","appointmentDateTime":20250301}`, apperrors.ErrValidation, "appointmentDateTime must be a string"},
		{"wrong top-level type", `["Jane"]`, apperrors.ErrValidation, "request body must be a JSON object, got array"},
		{"malformed json", `{"patientName":`, apperrors.ErrValidation, "valid JSON"},
		{"empty body", ``, apperrors.ErrValidation, "valid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindErr := bindBody(tt.body)
			require.Error(t, bindErr)

			err := BindError(bindErr)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestBindErrorRespondsWithValidationCode(t *testing.T) {
	w, body := respond(BindError(bindBody(`{"appointmentDateTime":1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestBindErrorBodyTooLarge(t *testing.T) {
	err := BindError(&http.MaxBytesError{Limit: 8})
	assert.Equal(t, apperrors.ErrBadRequest, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "8 bytes")
}
