package domain

// The validate tags are the declarative contract for each procedure input.
// Only non-emptiness of the raw strings is enforced; trimming is the caller's
// business.

// CreateTaskInput is the createTodo payload.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
}

// DeleteTaskInput is the deleteTodo payload. ID is a pointer so an absent id
// can be told apart from zero.
type DeleteTaskInput struct {
	ID *int64 `json:"id" validate:"required"`
}

// NewDeleteTaskInput builds a DeleteTaskInput for id.
func NewDeleteTaskInput(id int64) DeleteTaskInput {
	return DeleteTaskInput{ID: &id}
}

// TaskID returns the id or 0 when absent.
func (in DeleteTaskInput) TaskID() int64 {
	if in.ID == nil {
		return 0
	}
	return *in.ID
}
