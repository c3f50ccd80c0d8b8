package validation

import (
	"errors"
	"fmt"
	"strings"

	apperrors "task-manager/internal/errors"
)

// ValidationErrorType classifies why a field was rejected
type ValidationErrorType string

const (
	ErrorTypeRequired         ValidationErrorType = "required"
	ErrorTypeInvalidFormat    ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength    ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue     ValidationErrorType = "invalid_value"
	ErrorTypeInvalidCharacter ValidationErrorType = "invalid_character"
)

// FieldError is one rejected field. Message is written for the user.
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every field error found while parsing one input
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty collection
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}
	return "multiple validation errors: " + ve.join("; ", func(fe *FieldError) string { return fe.Error() })
}

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HasErrors reports whether any field was rejected
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ErrOrNil returns ve when it holds errors and nil otherwise
func (ve *ValidationError) ErrOrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// AddError records a rejected field
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Type: errorType, Message: message, Value: value})
}

func (ve *ValidationError) AddRequiredError(field string) {
	ve.AddError(field, ErrorTypeRequired, field+" is required", nil)
}

func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expectedFormat string) {
	ve.AddError(field, ErrorTypeInvalidFormat,
		fmt.Sprintf("%s has invalid format, expected: %s", field, expectedFormat), value)
}

// AddInvalidLengthError records a length outside [min, max]. A bound of zero or less is open.
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, min, max int) {
	var bound string
	switch {
	case min > 0 && max > 0:
		bound = fmt.Sprintf("must be between %d and %d characters long", min, max)
	case min > 0:
		bound = fmt.Sprintf("must be at least %d characters long", min)
	case max > 0:
		bound = fmt.Sprintf("must be at most %d characters long", max)
	default:
		bound = "has invalid length"
	}
	ve.AddError(field, ErrorTypeInvalidLength, field+" "+bound, value)
}

func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.AddError(field, ErrorTypeInvalidValue, fmt.Sprintf("%s has invalid value: %s", field, reason), value)
}

func (ve *ValidationError) AddInvalidCharacterError(field string, value interface{}) {
	ve.AddError(field, ErrorTypeInvalidCharacter, field+" contains invalid characters", value)
}

// Merge appends the field errors of err when it is a ValidationError
func (ve *ValidationError) Merge(err error) {
	var other *ValidationError
	if errors.As(err, &other) {
		ve.Errors = append(ve.Errors, other.Errors...)
	}
}

// GetFieldErrors returns the errors recorded for field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var matched []FieldError
	for _, fe := range ve.Errors {
		if fe.Field == field {
			matched = append(matched, fe)
		}
	}
	return matched
}

// GetUserFriendlyMessage lists the field messages, one per line when there are several
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}
	return "Multiple validation errors occurred:\n" + ve.join("\n", func(fe *FieldError) string { return "- " + fe.Message })
}

// ToAppError converts the collection into an application validation error
func (ve *ValidationError) ToAppError() *apperrors.AppError {
	appErr := apperrors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	for _, fe := range ve.Errors {
		appErr.WithContext(fe.Field, fe.Value)
	}
	return appErr
}

func (ve *ValidationError) join(sep string, format func(fe *FieldError) string) string {
	parts := make([]string, len(ve.Errors))
	for i := range ve.Errors {
		parts[i] = format(&ve.Errors[i])
	}
	return strings.Join(parts, sep)
}
