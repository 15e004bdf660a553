package errors

import "fmt"

// ErrorType groups failures by how a front-end should react to them.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeStorage
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypeCorruptData
	ErrorTypeConflict
)

type kind struct {
	name string
	code string
	// shown instead of the raw message; empty means the message is already user-facing
	userMessage string
	userFault   bool
}

var kinds = map[ErrorType]kind{
	ErrorTypeValidation:   {name: "validation", code: "VALIDATION_FAILED", userFault: true},
	ErrorTypeNotFound:     {name: "not_found", code: "NOT_FOUND", userFault: true},
	ErrorTypeStorage:      {name: "storage", code: "STORAGE_ERROR", userMessage: "A storage error occurred. Please try again."},
	ErrorTypeInvalidInput: {name: "invalid_input", code: "INVALID_INPUT", userFault: true},
	ErrorTypeTimeout:      {name: "timeout", code: "TIMEOUT", userMessage: "The operation timed out. Please try again."},
	ErrorTypeCorruptData:  {name: "corrupt_data", code: "CORRUPT_DATA", userMessage: "The saved task list is corrupted and could not be read."},
	ErrorTypeConflict:     {name: "conflict", code: "CONFLICT", userFault: true},
}

func (et ErrorType) String() string {
	if k, ok := kinds[et]; ok {
		return k.name
	}
	return "unknown"
}

// AppError is a classified failure raised below the API facade and surfaced by every front-end.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func newAppError(et ErrorType, cause error, format string, args ...interface{}) *AppError {
	return &AppError{
		Type:    et,
		Message: fmt.Sprintf(format, args...),
		Code:    kinds[et].code,
		Cause:   cause,
	}
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches targets of the same type. A target with a code must match it too.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t.Type != e.Type {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// With attaches a detail such as the task id or storage key.
func (e *AppError) With(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = map[string]interface{}{}
	}
	e.Context[key] = value
	return e
}

func (e *AppError) Detail(key string) (interface{}, bool) {
	v, ok := e.Context[key]
	return v, ok
}
