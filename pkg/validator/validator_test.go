package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

type sample struct {
	Name  string   `json:"name" validate:"required,notblank"`
	Email string   `json:"email" validate:"omitempty,email"`
	Days  []string `json:"days" validate:"dive,weekday"`
	Start string   `json:"start" validate:"omitempty,clock"`
	Date  string   `json:"date" validate:"omitempty,date"`
}

func TestValidateUsesJSONNames(t *testing.T) {
	err := New().Validate(&sample{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "x", Days: []string{"Monday", "friday"}, Start: "09:30", Date: "2025-03-01"}))

	err := v.Validate(&sample{Name: "x", Days: []string{"Funday"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weekday")

	err = v.Validate(&sample{Name: "x", Start: "9am"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HH:MM")

	err = v.Validate(&sample{Name: "x", Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
}

func TestValidateRejectsBlankStrings(t *testing.T) {
	for _, name := range []string{" ", "   ", "\t\n"} {
		err := New().Validate(&sample{Name: name})
		require.Error(t, err, "%q", name)
		assert.Contains(t, err.Error(), "name is required")
	}
	assert.NoError(t, New().Validate(&sample{Name: " x "}))
}
