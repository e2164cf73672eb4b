package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Task represents a todo item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates an unsaved Task. ID and CreatedAt are assigned by the store.
func NewTask(title, description string) Task {
	return Task{
		Title:       title,
		Description: description,
	}
}

// IsValid checks that the task carries the fields every persisted record has.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Description != ""
}

// IsPersisted reports whether the store has assigned an identity.
func (t Task) IsPersisted() bool {
	return t.ID > 0 && !t.CreatedAt.IsZero()
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// UnmarshalJSON coerces created_at from whatever the transport produced:
// an RFC 3339 string, SQLite's "YYYY-MM-DD HH:MM:SS" text, or a number of
// Unix milliseconds.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var wire struct {
		plain
		CreatedAt json.RawMessage `json:"created_at"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*t = Task(wire.plain)

	raw := bytes.TrimSpace(wire.CreatedAt)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		t.CreatedAt = time.Time{}
		return nil
	}

	createdAt, err := coerceTimestamp(raw)
	if err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	t.CreatedAt = createdAt
	return nil
}

func coerceTimestamp(raw json.RawMessage) (time.Time, error) {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		return ParseTimestamp(s)
	}

	var millis json.Number
	if err := json.Unmarshal(raw, &millis); err != nil {
		return time.Time{}, fmt.Errorf("unsupported timestamp %s", string(raw))
	}
	ms, err := millis.Int64()
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported timestamp %s", string(raw))
	}
	return time.UnixMilli(ms).UTC(), nil
}

// DeleteResult is the outcome of a delete. Success is false when no task
// matched the id.
type DeleteResult struct {
	Success bool `json:"success"`
}
