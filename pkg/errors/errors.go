// Package errors provides structured error handling for the application
// Engine sentinel errors are mapped onto codes at the application boundary
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes surfaced to callers of the meal plan use case
const (
	// Input errors
	CodeInvalidInput     ErrorCode = "INVALID_INPUT"
	CodeInvalidEnum      ErrorCode = "INVALID_ENUM"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Engine errors
	CodeUnsupportedMacro    ErrorCode = "UNSUPPORTED_MACRO"
	CodeEmptyResult         ErrorCode = "EMPTY_RESULT"
	CodeRecipeScalingFailed ErrorCode = "RECIPE_SCALING_FAILED"

	// Environment errors
	CodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	CodeCancelled          ErrorCode = "CANCELLED"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status the CLI uses for the error
func (e *AppError) ExitCode() int {
	switch e.Code {
	case CodeInvalidInput, CodeInvalidEnum, CodeValidationFailed:
		return 2
	case CodeCatalogUnavailable:
		return 3
	case CodeCancelled:
		return 130
	default:
		return 1
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewCatalogUnavailableError reports a catalog or recipe source failure
func NewCatalogUnavailableError(source string, cause error) *AppError {
	return NewAppError(
		CodeCatalogUnavailable,
		"Catalog unavailable",
		fmt.Sprintf("Failed to load %s", source),
	).WithCause(cause).WithMetadata("source", source)
}

// NewCancelledError reports a request abandoned by its caller
func NewCancelledError(cause error) *AppError {
	return NewAppError(CodeCancelled, "Request cancelled", "").WithCause(cause)
}

// NewRecipeScalingError reports a recipe slot that could not be scaled
func NewRecipeScalingError(recipeID string, cause error) *AppError {
	return NewAppError(
		CodeRecipeScalingFailed,
		"Recipe scaling failed",
		fmt.Sprintf("Recipe %s could not be scaled to its slot", recipeID),
	).WithCause(cause).WithMetadata("recipe_id", recipeID)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var builder strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "pkg/errors") {
			builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	return builder.String()
}

// ErrorResponse is the JSON shape errors are reported in
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails represents the error details in responses
type ErrorDetails struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// ToErrorResponse converts an AppError to an error response
func ToErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetails{
			Code:      err.Code,
			Message:   err.Message,
			Details:   err.Details,
			Metadata:  err.Metadata,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}
