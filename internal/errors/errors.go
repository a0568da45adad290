package errors

import (
	"fmt"
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

// Wrap wraps an error with additional context
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
		Code:    CodeInternalError,
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

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDataFile      = "DATA_FILE_ERROR"
	CodeColumnMissing = "COLUMN_MISSING"
	CodeBadNumeric    = "BAD_NUMERIC"
	CodeRenderFailed  = "RENDER_FAILED"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DataFileError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeDataFile,
		Message: fmt.Sprintf("data file %s", path),
		Cause:   cause,
	}
}

func ColumnMissing(column string) *AppError {
	return New(CodeColumnMissing, fmt.Sprintf("expected column %q not present", column))
}

func BadNumeric(column, value string, row int) *AppError {
	return New(CodeBadNumeric, fmt.Sprintf("column %q row %d: %q is not numeric", column, row, value))
}

func RenderFailed(chart string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("%s render failed", chart),
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
