package validation

import (
	"strings"
	"testing"

	"todo-list/internal/config"
	"todo-list/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateContent(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid content", "Buy milk", false, ""},
		{"Accented content", "Faire les courses à 18h", false, ""},
		{"Empty content", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Long content without a configured cap", strings.Repeat("a", 5000), false, ""},
		{"Embedded tab", "Buy\tmilk", false, ""},
		{"Embedded newline", "Buy\nmilk", false, ""},
		{"Bell character", "a\u0007b", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateContent(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.errorType, validationErr.Errors[0].Type)
		})
	}
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))
	assert.Error(t, validator.ValidateTaskID(0))
	assert.Error(t, validator.ValidateTaskID(-5))
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTask(domain.Task{ID: 1, Content: "Buy milk"}))

	err := validator.ValidateTask(domain.Task{ID: 0, Content: " "})
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Len(t, validationErr.GetFieldErrors("id"), 1)
	assert.Len(t, validationErr.GetFieldErrors("content"), 1)
}

func TestTaskValidatorWithConfig_ContentCap(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.ContentMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateContent("héllo"))
	assert.NoError(t, validator.ValidateContent("  abc\t "), "surrounding whitespace does not count")

	err := validator.ValidateContent("toolong")
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[0].Type)
	assert.Equal(t, "content must be 1 to 5 characters", ve.Errors[0].Message)
}
