package validation

import (
	"strings"
	"unicode/utf8"

	"todo-list/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed rune count is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidContentLength checks content against the configured maximum. Zero means no cap.
func (v *Validator) IsValidContentLength(content string) bool {
	max := v.ContentMaxLength()
	if max == 0 {
		return v.IsNonEmptyString(content)
	}
	return v.IsValidStringLength(content, 1, max)
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// ContentMaxLength returns the configured cap in runes, 0 when content length is unbounded.
func (v *Validator) ContentMaxLength() int {
	if v.config != nil && v.config.Validation.ContentMaxLength > 0 {
		return v.config.Validation.ContentMaxLength
	}
	return 0
}
