package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType names the rule a field broke.
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError is a single rejected field. Message is already phrased for the user.
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

// ValidationError collects every rule a task or command argument broke.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: []FieldError{}}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "invalid input"
	case 1:
		return "invalid " + ve.Errors[0].Error()
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Error()
	}
	return fmt.Sprintf("%d invalid fields: %s", len(ve.Errors), strings.Join(parts, "; "))
}

// AsValidationError finds a *ValidationError anywhere in err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// OrNil returns ve as an error only when something was recorded.
func (ve *ValidationError) OrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// Merge appends the field errors carried by err, if it is a validation error.
// Other errors are recorded against field.
func (ve *ValidationError) Merge(field string, err error) {
	if err == nil {
		return
	}
	if other, ok := AsValidationError(err); ok {
		ve.Errors = append(ve.Errors, other.Errors...)
		return
	}
	ve.AddError(field, ErrorTypeInvalidValue, err.Error(), nil)
}

func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Type: errorType, Message: message, Value: value})
}

func (ve *ValidationError) AddRequiredError(field string) {
	ve.AddError(field, ErrorTypeRequired, field+" is required", nil)
}

// AddInvalidLengthError records a length violation. A bound of zero means unbounded on that side.
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, min, max int) {
	var msg string
	switch {
	case min > 0 && max > 0:
		msg = fmt.Sprintf("%s must be %d to %d characters", field, min, max)
	case max > 0:
		msg = fmt.Sprintf("%s is longer than %d characters", field, max)
	case min > 0:
		msg = fmt.Sprintf("%s is shorter than %d characters", field, min)
	default:
		msg = field + " has the wrong length"
	}
	ve.AddError(field, ErrorTypeInvalidLength, msg, value)
}

func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.AddError(field, ErrorTypeInvalidValue, field+" "+reason, value)
}

// GetFieldErrors filters the recorded errors down to one field.
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var out []FieldError
	for _, fe := range ve.Errors {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// GetUserFriendlyMessage is what the CLI and web front-ends print.
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return "The task could not be accepted"
	}
	msgs := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}
