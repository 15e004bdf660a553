package cli

import (
	"fmt"
	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if msg, ok := eh.userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, msg)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if msg, ok := eh.userMessage(err); ok {
		return fmt.Errorf("%s", msg)
	}
	return err
}

func (eh *ErrorHandler) userMessage(err error) (string, bool) {
	// Field-level detail beats the generic wrapper message, so look through AppError causes too.
	if validationErr, ok := validation.AsValidationError(err); ok {
		return validationErr.GetUserFriendlyMessage(), true
	}
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err), true
	}
	return "", false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from the key-value store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// IsCorruptDataError checks if the saved task list could not be decoded
func (eh *ErrorHandler) IsCorruptDataError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeCorruptData)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
