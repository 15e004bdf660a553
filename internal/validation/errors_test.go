package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "invalid input", NewValidationError().Error())

	single := NewValidationError()
	single.AddRequiredError("content")
	assert.Equal(t, "invalid content: content is required", single.Error())

	several := NewValidationError()
	several.AddRequiredError("content")
	several.AddInvalidValueError("id", int64(0), "must be a positive integer")
	assert.Equal(t, "2 invalid fields: content: content is required; id: id must be a positive integer", several.Error())
}

func TestValidationError_OrNil(t *testing.T) {
	ve := NewValidationError()
	assert.NoError(t, ve.OrNil())

	ve.AddRequiredError("content")
	err := ve.OrNil()
	require.Error(t, err)
	assert.Same(t, ve, err)
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		record  func(*ValidationError)
		kind    ValidationErrorType
		message string
	}{
		{"required", func(ve *ValidationError) { ve.AddRequiredError("content") }, ErrorTypeRequired, "content is required"},
		{"length range", func(ve *ValidationError) { ve.AddInvalidLengthError("content", "x", 2, 50) }, ErrorTypeInvalidLength, "content must be 2 to 50 characters"},
		{"too long", func(ve *ValidationError) { ve.AddInvalidLengthError("content", "x", 0, 500) }, ErrorTypeInvalidLength, "content is longer than 500 characters"},
		{"too short", func(ve *ValidationError) { ve.AddInvalidLengthError("content", "x", 3, 0) }, ErrorTypeInvalidLength, "content is shorter than 3 characters"},
		{"unbounded", func(ve *ValidationError) { ve.AddInvalidLengthError("content", "x", 0, 0) }, ErrorTypeInvalidLength, "content has the wrong length"},
		{"value", func(ve *ValidationError) { ve.AddInvalidValueError("id", -1, "must be a positive integer") }, ErrorTypeInvalidValue, "id must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.record(ve)

			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.kind, ve.Errors[0].Type)
			assert.Equal(t, tt.message, ve.Errors[0].Message)
		})
	}
}

func TestValidationError_Merge(t *testing.T) {
	inner := NewValidationError()
	inner.AddRequiredError("content")

	ve := NewValidationError()
	ve.AddInvalidValueError("id", int64(0), "must be a positive integer")
	ve.Merge("content", nil)
	ve.Merge("content", inner)
	ve.Merge("lang", errors.New("unsupported"))

	require.Len(t, ve.Errors, 3)
	assert.Len(t, ve.GetFieldErrors("id"), 1)
	assert.Len(t, ve.GetFieldErrors("content"), 1)
	assert.Equal(t, "unsupported", ve.GetFieldErrors("lang")[0].Message)
	assert.Empty(t, ve.GetFieldErrors("missing"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	assert.Equal(t, "The task could not be accepted", NewValidationError().GetUserFriendlyMessage())

	ve := NewValidationError()
	ve.AddRequiredError("content")
	assert.Equal(t, "content is required", ve.GetUserFriendlyMessage())

	ve.AddInvalidValueError("id", int64(-2), "must be a positive integer")
	assert.Equal(t, "content is required; id must be a positive integer", ve.GetUserFriendlyMessage())
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("content")

	found, ok := AsValidationError(fmt.Errorf("submit: %w", ve))
	require.True(t, ok)
	assert.Same(t, ve, found)

	assert.True(t, IsValidationError(ve))
	assert.False(t, IsValidationError(FieldError{Field: "content", Message: "is required"}))
	assert.False(t, IsValidationError(errors.New("plain")))
}
