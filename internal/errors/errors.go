package errors

import "errors"

func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, cause, "%s", message)
}

// NewNotFoundError reports a missing task row or storage key.
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, nil, "%s not found: %s", resource, identifier).
		With("resource", resource).
		With("identifier", identifier)
}

// NewStorageError wraps a failure from a KeyValueStore backend.
func NewStorageError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, cause, "%s failed", operation).
		With("operation", operation)
}

// NewInvalidInputError rejects a command argument, form value or config field.
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, nil, "invalid input for %s: %s", field, reason).
		With("field", field).
		With("value", value)
}

func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newAppError(ErrorTypeTimeout, nil, "%s timed out", operation).
		With("operation", operation).
		With("timeout", timeout)
}

// NewCorruptDataError reports a stored value that could not be decoded.
func NewCorruptDataError(key string, cause error) *AppError {
	return newAppError(ErrorTypeCorruptData, cause, "value under %q is malformed", key).
		With("key", key)
}

func NewConflictError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeConflict, nil, "%s already exists: %s", resource, identifier).
		With("resource", resource).
		With("identifier", identifier)
}

// WrapError classifies an arbitrary error under errorType.
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return newAppError(errorType, err, "%s", message)
}

func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// GetUserMessage returns the text the CLI, TUI and web front-ends show.
// Errors caused by the user keep their own message; internal failures get a fixed one.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	k, known := kinds[appErr.Type]
	switch {
	case !known:
		return "An unexpected error occurred. Please try again."
	case k.userMessage != "":
		return k.userMessage
	default:
		return appErr.Message
	}
}

func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for mistakes the user can fix by retyping.
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return true
	}
	return !kinds[appErr.Type].userFault
}
