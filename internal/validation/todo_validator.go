package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"todo-list/internal/domain"
)

// TodoValidator provides validation for the todo procedures' inputs and
// outputs.
type TodoValidator struct {
	validator *Validator
}

// NewTodoValidator creates a new todo validator
func NewTodoValidator() *TodoValidator {
	return &TodoValidator{
		validator: NewValidator(),
	}
}

// ValidateCreateInput checks that title and description are present and
// non-empty. Whitespace counts as content.
func (tv *TodoValidator) ValidateCreateInput(in domain.CreateTaskInput) error {
	return tv.validator.Struct(in)
}

// ValidateDeleteInput checks that an id was supplied.
func (tv *TodoValidator) ValidateDeleteInput(in domain.DeleteTaskInput) error {
	return tv.validator.Struct(in)
}

// DecodeCreateInput decodes and validates a raw createTodo payload.
func (tv *TodoValidator) DecodeCreateInput(raw []byte) (domain.CreateTaskInput, error) {
	var in domain.CreateTaskInput
	if err := decodeInput(raw, &in); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if err := tv.ValidateCreateInput(in); err != nil {
		return domain.CreateTaskInput{}, err
	}
	return in, nil
}

// deletePayload keeps the id as a raw literal so that 1.0 and 1e3 can be
// accepted as integers.
type deletePayload struct {
	ID json.RawMessage `json:"id"`
}

// DecodeDeleteInput decodes and validates a raw deleteTodo payload. Any JSON
// number that is an exact integer within int64 range is an id. Fractions,
// strings and out-of-range numbers fail here rather than being truncated.
func (tv *TodoValidator) DecodeDeleteInput(raw []byte) (domain.DeleteTaskInput, error) {
	var payload deletePayload
	if err := decodeInput(raw, &payload); err != nil {
		return domain.DeleteTaskInput{}, err
	}

	var in domain.DeleteTaskInput
	if len(payload.ID) > 0 && !bytes.Equal(payload.ID, []byte("null")) {
		id, ok := parseIntegralNumber(payload.ID)
		if !ok {
			validationError := NewValidationError()
			validationError.AddInvalidTypeError("id", string(payload.ID), "integer")
			return domain.DeleteTaskInput{}, validationError
		}
		in.ID = &id
	}
	if err := tv.ValidateDeleteInput(in); err != nil {
		return domain.DeleteTaskInput{}, err
	}
	return in, nil
}

// parseIntegralNumber reads a JSON literal as an int64. It reports false for
// anything that is not a number, has a fractional part or overflows int64.
func parseIntegralNumber(literal json.RawMessage) (int64, bool) {
	var num json.Number
	if literal[0] == '"' || json.Unmarshal(literal, &num) != nil {
		return 0, false
	}
	if id, err := num.Int64(); err == nil {
		return id, true
	}

	f, _, err := big.ParseFloat(num.String(), 10, 512, big.ToNearestEven)
	if err != nil || !f.IsInt() {
		return 0, false
	}
	id, accuracy := f.Int64()
	if accuracy != big.Exact {
		return 0, false
	}
	return id, true
}

// ValidateTask checks a Task about to leave a handler: it must carry a
// store-assigned id and timestamp as well as both text fields.
func (tv *TodoValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if task.ID <= 0 {
		validationError.AddInvalidValueError("id", task.ID, "must be a positive integer")
	}
	if task.Title == "" {
		validationError.AddRequiredError("title")
	}
	if task.Description == "" {
		validationError.AddRequiredError("description")
	}
	if task.CreatedAt.IsZero() {
		validationError.AddRequiredError("created_at")
	}

	return validationError.OrNil()
}

// ValidateTasks validates every task, reporting the first failure.
func (tv *TodoValidator) ValidateTasks(tasks []domain.Task) error {
	for i, task := range tasks {
		if err := tv.ValidateTask(task); err != nil {
			return fmt.Errorf("task at index %d: %w", i, err)
		}
	}
	return nil
}

// decodeInput unmarshals raw into dst. An empty body or JSON null decodes as
// an empty object so that missing fields surface as required errors.
func decodeInput(raw []byte, dst interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("input", string(raw), "a single JSON object")
		return validationError
	}
	return nil
}

func decodeError(err error) error {
	validationError := NewValidationError()

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			validationError.AddInvalidTypeError("input", typeErr.Value, "JSON object")
			return validationError
		}
		validationError.AddInvalidTypeError(field, typeErr.Value, expectedKind(typeErr))
		return validationError
	}

	validationError.AddInvalidFormatError("input", nil, "valid JSON")
	return validationError
}

func expectedKind(typeErr *json.UnmarshalTypeError) string {
	switch typeErr.Type.Kind().String() {
	case "string":
		return "string"
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "integer"
	default:
		return typeErr.Type.String()
	}
}
