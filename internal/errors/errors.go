package errors

import (
	"errors"
	"fmt"
)

// ErrStorage matches any storage error with errors.Is
var ErrStorage = &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}

const storageUserMessage = "A storage error occurred. Please try again."

func newAppError(errorType ErrorType, code, message string, cause error, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: context,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, "VALIDATION_FAILED", message, cause, nil)
}

// NewNotFoundError reports that no resource exists with the given identifier
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, "NOT_FOUND",
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		map[string]interface{}{"resource": resource, "identifier": identifier})
}

// NewStorageError wraps an I/O or constraint failure of the task store
func NewStorageError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeStorage, "STORAGE_ERROR",
		"storage operation failed: "+operation, cause,
		map[string]interface{}{"operation": operation})
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, "INVALID_INPUT",
		fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		map[string]interface{}{"field": field, "value": value, "reason": reason})
}

// AsAppError finds the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.IsType(errorType)
}

// IsStorageError reports whether err is, or wraps, a storage error
func IsStorageError(err error) bool {
	return IsErrorType(err, ErrorTypeStorage)
}

// GetUserMessage returns the message to show for err. Storage details are hidden.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	switch {
	case !ok:
		return err.Error()
	case appErr.Type.userCaused():
		return appErr.Message
	case appErr.Type == ErrorTypeStorage:
		return storageUserMessage
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError is false for errors caused by the user's input
func ShouldLogError(err error) bool {
	appErr, ok := AsAppError(err)
	return !ok || !appErr.Type.userCaused()
}
