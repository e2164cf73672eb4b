package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=1"`
	Alias string `json:"alias,omitempty" validate:"omitempty,min=3"`
	Count *int   `json:"count" validate:"required"`
	Score int    `validate:"gte=10"`
}

func TestValidator_Struct(t *testing.T) {
	v := NewValidator()
	one := 1

	tests := []struct {
		name       string
		input      sample
		wantFields map[string]ValidationErrorType
	}{
		{
			name:  "valid",
			input: sample{Name: "n", Count: &one, Score: 10},
		},
		{
			name:  "missing required fields use json names",
			input: sample{Score: 10},
			wantFields: map[string]ValidationErrorType{
				"name":  ErrorTypeRequired,
				"count": ErrorTypeRequired,
			},
		},
		{
			name:       "min length above one",
			input:      sample{Name: "n", Alias: "ab", Count: &one, Score: 10},
			wantFields: map[string]ValidationErrorType{"alias": ErrorTypeInvalidLength},
		},
		{
			name:       "field without json tag keeps go name",
			input:      sample{Name: "n", Count: &one, Score: 1},
			wantFields: map[string]ValidationErrorType{"Score": ErrorTypeInvalidValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.Len(t, ve.Errors, len(tt.wantFields))
			for _, fe := range ve.Errors {
				assert.Equal(t, tt.wantFields[fe.Field], fe.Type, "field %s", fe.Field)
			}
		})
	}
}

func TestValidator_ZeroPointerValueIsPresent(t *testing.T) {
	zero := 0
	err := NewValidator().Struct(sample{Name: "n", Count: &zero, Score: 10})
	assert.NoError(t, err)
}

func TestValidator_NonStruct(t *testing.T) {
	err := NewValidator().Struct("not a struct")
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}
