package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/rpc"
	"todo-list/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle turns err into a user-facing message prefixed with the operation.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple is Handle without the operation prefix.
func (eh *ErrorHandler) HandleSimple(err error) error {
	return fmt.Errorf("%s", eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	var remote *rpc.RemoteError
	if stderrors.As(err, &remote) {
		if len(remote.FieldErrors) == 0 || remote.Message != "" {
			return remote.Message
		}
		return joinFieldErrors(remote.FieldErrors)
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return validationErr.GetUserFriendlyMessage()
	}

	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return "the request timed out"
	}

	return err.Error()
}

// IsValidationError reports whether err was rejected for bad input, locally
// or by the server.
func (eh *ErrorHandler) IsValidationError(err error) bool {
	var remote *rpc.RemoteError
	if stderrors.As(err, &remote) {
		return remote.Code == rpc.CodeBadRequest
	}
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	var remote *rpc.RemoteError
	if stderrors.As(err, &remote) {
		return remote.Code == rpc.CodeNotFound
	}
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the wire code for remote errors and the AppError code
// otherwise.
func (eh *ErrorHandler) GetErrorCode(err error) string {
	var remote *rpc.RemoteError
	if stderrors.As(err, &remote) {
		return remote.Code
	}
	return errors.GetErrorCode(err)
}

func joinFieldErrors(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var msgs []string
	for _, name := range names {
		msgs = append(msgs, fields[name]...)
	}
	return strings.Join(msgs, "; ")
}
