package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator evaluates `validate:` struct tags and reports failures as a
// ValidationError keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Struct validates s against its tags. It returns nil or a *ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// s was not a struct
		return fmt.Errorf("validation: %w", err)
	}

	validationError := NewValidationError()
	for _, fe := range fieldErrs {
		addFieldError(validationError, fe)
	}
	return validationError
}

func addFieldError(ve *ValidationError, fe validator.FieldError) {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		ve.AddRequiredError(field)
	case "min":
		var min int
		fmt.Sscanf(fe.Param(), "%d", &min)
		if min <= 1 {
			ve.AddRequiredError(field)
			return
		}
		ve.AddInvalidLengthError(field, fe.Value(), min)
	case "gt", "gte":
		ve.AddInvalidValueError(field, fe.Value(), fmt.Sprintf("must be greater than %s", fe.Param()))
	default:
		ve.AddInvalidValueError(field, fe.Value(), fmt.Sprintf("failed %q check", fe.Tag()))
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
