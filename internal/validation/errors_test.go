package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "title", Message: "Title is required"}}, "validation error for field 'title': Title is required"},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "Title is required"},
			{Field: "description", Message: "Description is required"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_HasErrorsAndOrNil(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Error("new ValidationError should have no errors")
	}
	if ve.OrNil() != nil {
		t.Error("OrNil() should be nil with no errors")
	}

	ve.AddRequiredError("title")
	if !ve.HasErrors() {
		t.Error("HasErrors() = false after AddRequiredError")
	}
	if ve.OrNil() == nil {
		t.Error("OrNil() should return the error once it holds field errors")
	}
}

func TestValidationError_Adders(t *testing.T) {
	tests := []struct {
		name        string
		add         func(ve *ValidationError)
		errorType   ValidationErrorType
		wantMessage string
	}{
		{"required", func(ve *ValidationError) { ve.AddRequiredError("title") }, ErrorTypeRequired, "Title is required"},
		{"invalid type", func(ve *ValidationError) { ve.AddInvalidTypeError("id", "string", "integer") }, ErrorTypeInvalidType, "Id must be of type integer"},
		{"invalid format", func(ve *ValidationError) { ve.AddInvalidFormatError("input", "{", "valid JSON") }, ErrorTypeInvalidFormat, "Input has invalid format, expected: valid JSON"},
		{"invalid length", func(ve *ValidationError) { ve.AddInvalidLengthError("title", "ab", 3) }, ErrorTypeInvalidLength, "Title must be at least 3 characters long"},
		{"invalid value", func(ve *ValidationError) { ve.AddInvalidValueError("id", -1, "must be a positive integer") }, ErrorTypeInvalidValue, "Id has invalid value: must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			if len(ve.Errors) != 1 {
				t.Fatalf("Expected 1 error, got %d", len(ve.Errors))
			}
			if ve.Errors[0].Type != tt.errorType {
				t.Errorf("Expected error type %v, got %v", tt.errorType, ve.Errors[0].Type)
			}
			if ve.Errors[0].Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, ve.Errors[0].Message)
			}
		})
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()

	ve.AddRequiredError("title")
	ve.AddInvalidLengthError("title", "a", 2)
	ve.AddRequiredError("description")

	if got := len(ve.GetFieldErrors("title")); got != 2 {
		t.Errorf("Expected 2 errors for 'title', got %d", got)
	}
	if got := len(ve.GetFieldErrors("description")); got != 1 {
		t.Errorf("Expected 1 error for 'description', got %d", got)
	}
	if got := len(ve.GetFieldErrors("missing")); got != 0 {
		t.Errorf("Expected 0 errors for 'missing', got %d", got)
	}
}

func TestValidationError_FieldMessages(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddRequiredError("description")

	got := ve.FieldMessages()
	if len(got) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(got))
	}
	if got["title"][0] != "Title is required" {
		t.Errorf("unexpected title message %q", got["title"][0])
	}
	if got["description"][0] != "Description is required" {
		t.Errorf("unexpected description message %q", got["description"][0])
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "Input validation failed"},
		{"Single error", []FieldError{{Field: "title", Message: "Title is required"}}, "Title is required"},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "Title is required"},
			{Field: "description", Message: "Description is required"},
		}, "Title is required; Description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.GetUserFriendlyMessage(); result != tt.expected {
				t.Errorf("GetUserFriendlyMessage() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")

	if !IsValidationError(ve) {
		t.Errorf("IsValidationError() = false, expected true for ValidationError")
	}

	wrapped := fmt.Errorf("createTodo: %w", ve)
	if !IsValidationError(wrapped) {
		t.Errorf("IsValidationError() = false, expected true for wrapped ValidationError")
	}

	regularError := &FieldError{Field: "test", Message: "error"}
	if IsValidationError(regularError) {
		t.Errorf("IsValidationError() = true, expected false for regular error")
	}
}
