package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypeMethodNotSupported
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:         "validation",
	ErrorTypeNotFound:           "not_found",
	ErrorTypeDatabase:           "database",
	ErrorTypeInvalidInput:       "invalid_input",
	ErrorTypeTimeout:            "timeout",
	ErrorTypeMethodNotSupported: "method_not_supported",
}

func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// CallerFault reports whether errors of this type come from a bad request
// rather than from the store or the server itself.
func (et ErrorType) CallerFault() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeMethodNotSupported:
		return true
	}
	return false
}

// AppError is a classified failure. Message is safe to show to a caller only
// when Type.CallerFault() is true.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}
