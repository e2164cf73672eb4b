package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/rpc"
	"todo-list/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("title")
	ve.AddRequiredError("description")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "remote validation error",
			operation: "add todo",
			err: &rpc.RemoteError{
				StatusCode: http.StatusBadRequest,
				Code:       rpc.CodeBadRequest,
				Message:    "Title is required",
			},
			expected: "failed to add todo: Title is required",
		},
		{
			name:      "remote error with only field errors",
			operation: "add todo",
			err: &rpc.RemoteError{
				Code: rpc.CodeBadRequest,
				FieldErrors: map[string][]string{
					"title":       {"Title is required"},
					"description": {"Description is required"},
				},
			},
			expected: "failed to add todo: Description is required; Title is required",
		},
		{
			name:      "wrapped remote error",
			operation: "list todos",
			err:       fmt.Errorf("outer: %w", &rpc.RemoteError{Code: rpc.CodeInternal, Message: "Internal server error"}),
			expected:  "failed to list todos: Internal server error",
		},
		{
			name:      "local validation error",
			operation: "add todo",
			err:       ve,
			expected:  "failed to add todo: Title is required; Description is required",
		},
		{
			name:      "not found error",
			operation: "get todo",
			err:       apperrors.NewNotFoundError("todo", "7"),
			expected:  "failed to get todo: todo not found: 7",
		},
		{
			name:      "database error",
			operation: "add todo",
			err:       apperrors.NewDatabaseError("insert", errors.New("disk full")),
			expected:  "failed to add todo: A database error occurred. Please try again.",
		},
		{
			name:      "deadline",
			operation: "list todos",
			err:       fmt.Errorf("getTodos: %w", context.DeadlineExceeded),
			expected:  "failed to list todos: the request timed out",
		},
		{
			name:      "regular error",
			operation: "list todos",
			err:       errors.New("getTodos: connection refused"),
			expected:  "failed to list todos: getTodos: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			assert.Equal(t, tt.expected, result.Error())
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.HandleSimple(apperrors.NewTimeoutError("list", context.DeadlineExceeded))
	assert.Equal(t, "The operation timed out. Please try again.", err.Error())
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	badRequest := &rpc.RemoteError{Code: rpc.CodeBadRequest}
	notFound := &rpc.RemoteError{Code: rpc.CodeNotFound}

	assert.True(t, eh.IsValidationError(badRequest))
	assert.False(t, eh.IsValidationError(notFound))
	assert.True(t, eh.IsValidationError(validation.NewValidationError()))
	assert.True(t, eh.IsValidationError(apperrors.NewValidationError("bad", nil)))

	assert.True(t, eh.IsNotFoundError(notFound))
	assert.True(t, eh.IsNotFoundError(apperrors.NewNotFoundError("todo", "1")))
	assert.False(t, eh.IsNotFoundError(errors.New("other")))

	assert.Equal(t, rpc.CodeBadRequest, eh.GetErrorCode(badRequest))
	assert.Equal(t, "NOT_FOUND", eh.GetErrorCode(apperrors.NewNotFoundError("todo", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("other")))
}
