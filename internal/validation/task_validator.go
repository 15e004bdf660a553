package validation

import (
	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateContent accepts any content that is non-empty after trimming, tabs and
// other control characters included, unless a length cap is configured.
func (tv *TaskValidator) ValidateContent(content string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(content)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("content")
		return validationError
	}

	if !tv.validator.IsValidContentLength(trimmed) {
		validationError.AddInvalidLengthError("content", trimmed, 1, tv.validator.ContentMaxLength())
	}

	return validationError.OrNil()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateTask validates a complete domain.Task record
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}

	validationError.Merge("content", tv.ValidateContent(task.Content))

	return validationError.OrNil()
}
