package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", "2 litres")

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 litres", task.Description)
	assert.Zero(t, task.ID)
	assert.True(t, task.CreatedAt.IsZero())
	assert.False(t, task.IsPersisted())
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task",
			task:     Task{ID: 1, Title: "Title", Description: "Desc"},
			expected: true,
		},
		{
			name:     "empty title",
			task:     Task{ID: 1, Title: "", Description: "Desc"},
			expected: false,
		},
		{
			name:     "empty description",
			task:     Task{ID: 1, Title: "Title", Description: ""},
			expected: false,
		},
		{
			name:     "whitespace is not trimmed",
			task:     Task{ID: 1, Title: " ", Description: " "},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{ID: 1, Title: "My Task"}.String())
	assert.Equal(t, "", Task{}.String())
}

func TestTask_MarshalJSON(t *testing.T) {
	task := Task{
		ID:          7,
		Title:       "Buy milk",
		Description: "2 litres",
		CreatedAt:   time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"Buy milk","description":"2 litres","created_at":"2024-05-01T09:30:00Z"}`, string(data))
}

func TestTask_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		expected  time.Time
		wantErr   bool
	}{
		{name: "rfc3339 string", createdAt: `"2024-05-01T09:30:00Z"`, expected: want},
		{name: "rfc3339 with millis", createdAt: `"2024-05-01T09:30:00.250Z"`, expected: want.Add(250 * time.Millisecond)},
		{name: "sqlite text", createdAt: `"2024-05-01 09:30:00"`, expected: want},
		{name: "unix millis", createdAt: `1714555800000`, expected: want},
		{name: "null", createdAt: `null`, expected: time.Time{}},
		{name: "garbage string", createdAt: `"yesterday"`, wantErr: true},
		{name: "fractional number", createdAt: `1.5`, wantErr: true},
		{name: "object", createdAt: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"id":3,"title":"T","description":"D","created_at":` + tt.createdAt + `}`

			var task Task
			err := json.Unmarshal([]byte(payload), &task)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(3), task.ID)
			assert.Equal(t, "T", task.Title)
			assert.Equal(t, "D", task.Description)
			assert.True(t, tt.expected.Equal(task.CreatedAt), "got %v", task.CreatedAt)
		})
	}
}

func TestTask_UnmarshalJSON_MissingCreatedAt(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"T","description":"D"}`), &task))
	assert.True(t, task.CreatedAt.IsZero())
	assert.False(t, task.IsPersisted())
}

func TestTask_JSONRoundTrip(t *testing.T) {
	original := Task{
		ID:          42,
		Title:       "Write report",
		Description: "Q3 numbers",
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.ID, decoded.ID)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "rfc3339", input: "2024-05-01T09:30:00Z"},
		{name: "rfc3339 offset", input: "2024-05-01T11:30:00+02:00"},
		{name: "iso without zone", input: "2024-05-01T09:30:00.123"},
		{name: "postgres text", input: "2024-05-01 09:30:00.123456+00:00"},
		{name: "sqlite default", input: "2024-05-01 09:30:00"},
		{name: "surrounding spaces", input: "  2024-05-01T09:30:00Z  "},
		{name: "empty", input: "", wantErr: true},
		{name: "date only", input: "2024-05-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 2024, ts.Year())
			assert.Equal(t, 9, ts.UTC().Hour())
		})
	}
}

func TestDeleteTaskInput(t *testing.T) {
	in := NewDeleteTaskInput(5)
	require.NotNil(t, in.ID)
	assert.Equal(t, int64(5), in.TaskID())

	assert.Equal(t, int64(0), DeleteTaskInput{}.TaskID())
}
