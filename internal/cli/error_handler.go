package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/validation"
)

// CommandError is a failed command with a message fit for the terminal.
// The original error stays reachable through errors.Is and errors.As.
type CommandError struct {
	Operation string
	Message   string
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	log zerolog.Logger
}

// NewErrorHandler creates an error handler that logs failures to log
func NewErrorHandler(log zerolog.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

// Handle logs unexpected errors and returns a user-friendly error for operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return err
	}

	if !eh.IsUserError(err) {
		event := eh.log.Error().
			Err(err).
			Str("operation", operation).
			Str("code", eh.GetErrorCode(err))
		if appErr := toAppError(err); appErr != nil {
			event = event.Fields(appErr.Context)
		}
		event.Msg("command failed")
	}

	return &CommandError{Operation: operation, Message: eh.UserMessage(err), Err: err}
}

// UserMessage returns the text shown to the user for err
func (eh *ErrorHandler) UserMessage(err error) string {
	if appErr := toAppError(err); appErr != nil {
		return apperrors.GetUserMessage(appErr)
	}
	return err.Error()
}

// toAppError returns the AppError in err's chain, converting field validation errors.
// It returns nil for errors the application did not classify.
func toAppError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.ToAppError()
	}
	return nil
}

// IsUserError reports whether err was caused by bad input rather than a failure
func (eh *ErrorHandler) IsUserError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	if apperrors.IsAppError(err) {
		return !apperrors.ShouldLogError(err)
	}
	return false
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return apperrors.IsErrorType(err, apperrors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound)
}

// IsStorageError checks if an error came from the task store
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return apperrors.IsStorageError(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if appErr := toAppError(err); appErr != nil {
		return appErr.Code
	}
	return apperrors.GetErrorCode(err)
}
