package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestValidationError_MessageFromFirstField(t *testing.T) {
	err := ValidationError([]FieldError{
		{Field: "name", Error: "is required"},
		{Field: "name", Error: "must be at least 3 characters"},
	})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Equal(t, "name is required", err.Message)
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 2)
}

func TestValidationError_NoFields(t *testing.T) {
	assert.Equal(t, "Validation failed", ValidationError(nil).Message)
}
