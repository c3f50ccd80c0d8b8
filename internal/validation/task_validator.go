package validation

import (
	"time"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

const (
	FieldTitle     = "title"
	FieldDueDate   = "due_date"
	FieldPriority  = "priority"
	FieldCompleted = "completed"
	FieldTaskID    = "task_id"
)

// TaskInput is a task's fields after parsing raw user input
type TaskInput struct {
	Title    string
	DueDate  time.Time
	Priority domain.Priority
}

// TaskValidator turns raw user input into typed task fields
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured title bounds
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(FieldTitle)
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError(FieldTitle, trimmed, tv.validator.TitleMinLength(), tv.validator.TitleMaxLength())
	}

	if tv.validator.HasControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError(FieldTitle, trimmed)
	}

	return validationError.ErrOrNil()
}

// ParseTitle returns the trimmed title if valid
func (tv *TaskValidator) ParseTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

// ParseDueDate parses a YYYY-MM-DD due date
func (tv *TaskValidator) ParseDueDate(s string) (time.Time, error) {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(s) {
		validationError.AddRequiredError(FieldDueDate)
		return time.Time{}, validationError
	}

	date, ok := tv.validator.ParseISODate(s)
	if !ok {
		validationError.AddInvalidFormatError(FieldDueDate, s, "YYYY-MM-DD")
		return time.Time{}, validationError
	}
	return date, nil
}

// ParsePriority parses a priority of 1 (High), 2 (Medium) or 3 (Low)
func (tv *TaskValidator) ParsePriority(s string) (domain.Priority, error) {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(s) {
		validationError.AddRequiredError(FieldPriority)
		return 0, validationError
	}

	n, ok := tv.validator.ParseInt(s)
	if !ok {
		validationError.AddInvalidFormatError(FieldPriority, s, "a number between 1 and 3")
		return 0, validationError
	}
	if !tv.validator.IsValidPriority(int(n)) {
		validationError.AddInvalidValueError(FieldPriority, n, "must be 1 (High), 2 (Medium) or 3 (Low)")
		return 0, validationError
	}
	return domain.Priority(n), nil
}

// ParseCompleted parses "true" or "false", ignoring letter case
func (tv *TaskValidator) ParseCompleted(s string) (bool, error) {
	completed, ok := tv.validator.ParseBoolWord(s)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(FieldCompleted, s, "true or false")
		return false, validationError
	}
	return completed, nil
}

// ParseTaskID parses a positive task id
func (tv *TaskValidator) ParseTaskID(s string) (int64, error) {
	id, ok := tv.validator.ParseInt(s)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(FieldTaskID, s, "a positive integer")
		return 0, validationError
	}
	if err := tv.ValidateTaskID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldTaskID, id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ParseNewTask parses all fields of a new task, reporting every invalid field at once
func (tv *TaskValidator) ParseNewTask(title, dueDate, priority string) (TaskInput, error) {
	validationError := NewValidationError()
	var input TaskInput
	var err error

	if input.Title, err = tv.ParseTitle(title); err != nil {
		validationError.Merge(err)
	}
	if input.DueDate, err = tv.ParseDueDate(dueDate); err != nil {
		validationError.Merge(err)
	}
	if input.Priority, err = tv.ParsePriority(priority); err != nil {
		validationError.Merge(err)
	}

	if validationError.HasErrors() {
		return TaskInput{}, validationError
	}
	return input, nil
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateTitle(task.Title))

	if task.DueDate.IsZero() {
		validationError.AddRequiredError(FieldDueDate)
	}
	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError(FieldPriority, int(task.Priority), "must be 1 (High), 2 (Medium) or 3 (Low)")
	}

	// If task has an ID, validate it
	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError(FieldTaskID, task.ID, "must be a positive integer")
	}

	return validationError.ErrOrNil()
}
