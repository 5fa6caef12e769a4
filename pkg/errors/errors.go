package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Tool installation errors
	ErrToolInstall ErrorCode = "TOOL_INSTALL"

	// Version-control errors
	ErrGitClone    ErrorCode = "GIT_CLONE"
	ErrGitDescribe ErrorCode = "GIT_DESCRIBE"
	ErrGitCheckout ErrorCode = "GIT_CHECKOUT"

	// Download errors
	ErrFetch ErrorCode = "FETCH"

	// FileSystem errors
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Shell errors
	ErrShellNotFound ErrorCode = "SHELL_NOT_FOUND"
	ErrShellChange   ErrorCode = "SHELL_CHANGE"
)

// ZshbootError represents a structured error with code and details
type ZshbootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ZshbootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ZshbootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ZshbootError) Is(target error) bool {
	var targetErr *ZshbootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail to the error and returns it for chaining
func (e *ZshbootError) WithDetail(key string, value interface{}) *ZshbootError {
	e.Details[key] = value
	return e
}

// New creates a new ZshbootError with the given code and message
func New(code ErrorCode, message string) *ZshbootError {
	return &ZshbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ZshbootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ZshbootError {
	return &ZshbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ZshbootError
func Wrap(err error, code ErrorCode, message string) *ZshbootError {
	if err == nil {
		return nil
	}
	return &ZshbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ZshbootError {
	if err == nil {
		return nil
	}
	return &ZshbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not ZshbootErrors
func GetCode(err error) ErrorCode {
	var zbErr *ZshbootError
	if errors.As(err, &zbErr) {
		return zbErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
