package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 42" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 42")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "42" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("insert task", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: insert task" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want STORAGE_ERROR", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewStorageError should unwrap to its cause")
	}
	if !errors.Is(err, ErrStorage) {
		t.Errorf("NewStorageError should match ErrStorage")
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "insert task" {
		t.Errorf("NewStorageError should set operation context")
	}
}

func TestStorageErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to add task: %w", NewStorageError("insert task", errors.New("locked")))

	if !IsStorageError(err) {
		t.Errorf("IsStorageError should see through fmt.Errorf wrapping")
	}
	if !errors.Is(err, ErrStorage) {
		t.Errorf("errors.Is should match ErrStorage through wrapping")
	}
	if IsStorageError(NewNotFoundError("task", "1")) {
		t.Errorf("IsStorageError should be false for not found errors")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "7", "must be 1, 2 or 3")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for priority: must be 1, 2 or 3" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want INVALID_INPUT", err.Code)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "7" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestAppError_Error(t *testing.T) {
	withCause := NewStorageError("query", errors.New("boom"))
	if withCause.Error() != "storage: storage operation failed: query (caused by: boom)" {
		t.Errorf("Error() = %q", withCause.Error())
	}

	withoutCause := NewNotFoundError("task", "3")
	if withoutCause.Error() != "not_found: task not found: 3" {
		t.Errorf("Error() = %q", withoutCause.Error())
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(&AppError{Type: ErrorTypeValidation}) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}

	result, ok := AsAppError(appError)
	if !ok || result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok || result != nil {
		t.Errorf("AsAppError should return nil, false for regular error")
	}
}

func TestErrorType_String(t *testing.T) {
	tests := map[ErrorType]string{
		ErrorTypeValidation:   "validation",
		ErrorTypeNotFound:     "not_found",
		ErrorTypeStorage:      "storage",
		ErrorTypeInvalidInput: "invalid_input",
		ErrorType(99):         "unknown",
	}
	for et, want := range tests {
		if got := et.String(); got != want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", int(et), got, want)
		}
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Storage error",
			err:      NewStorageError("query", errors.New("locked")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(&AppError{Code: "VALIDATION_FAILED"}) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("due", "x", "format"), false},
		{"Storage error", NewStorageError("query", errors.New("locked")), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
