// Package errors carries structured errors across the adapter and CLI
// layers. The statistical domain uses plain sentinel errors; this wrapper
// exists so callers above the domain can attach codes and context without
// losing the sentinel underneath.
package errors

import (
	"fmt"
)

// Error codes used by the adapter and CLI layers
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeConfig     = "CONFIG_INVALID"
	CodeLoad       = "LOAD_FAILED"
	CodeAnalysis   = "ANALYSIS_FAILED"
	CodeShape      = "SHAPE_FAILED"
	CodeBadRequest = "BAD_REQUEST"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving an existing code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// ConfigInvalid creates a configuration error
func ConfigInvalid(message string) *AppError {
	return New(CodeConfig, message)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// CodeOf returns the error code, or CodeInternal for plain errors
func CodeOf(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}
