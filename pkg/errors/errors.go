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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Rule construction errors
	ErrRulesLoad  ErrorCode = "RULES_LOAD"
	ErrRulesParse ErrorCode = "RULES_PARSE"

	// Condition errors
	ErrConditionUnknown ErrorCode = "CONDITION_UNKNOWN"
	ErrConditionInvalid ErrorCode = "CONDITION_INVALID"

	// Action errors
	ErrActionUnknown ErrorCode = "ACTION_UNKNOWN"
	ErrActionInvalid ErrorCode = "ACTION_INVALID"

	// Filesystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileMove   ErrorCode = "FILE_MOVE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileDelete ErrorCode = "FILE_DELETE"
)

// MaidError represents a structured error with code and details
type MaidError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MaidError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MaidError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MaidError) Is(target error) bool {
	var targetErr *MaidError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MaidError with the given code and message
func New(code ErrorCode, message string) *MaidError {
	return &MaidError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MaidError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MaidError {
	return &MaidError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MaidError
func Wrap(err error, code ErrorCode, message string) *MaidError {
	if err == nil {
		return nil
	}
	return &MaidError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MaidError {
	if err == nil {
		return nil
	}
	return &MaidError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MaidError) WithDetail(key string, value interface{}) *MaidError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var maidErr *MaidError
	if errors.As(err, &maidErr) {
		return maidErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MaidError
func GetErrorCode(err error) ErrorCode {
	var maidErr *MaidError
	if errors.As(err, &maidErr) {
		return maidErr.Code
	}
	return ErrUnknown
}
