package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo-list/internal/domain"
	"todo-list/internal/validation"
)

// RemoteError is a failure reported by the server in an error envelope.
type RemoteError struct {
	StatusCode  int
	Code        string
	Message     string
	Procedure   string
	RequestID   string
	FieldErrors map[string][]string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Procedure, e.Code, e.Message)
}

// Client calls the todo procedures on a remote server.
type Client struct {
	baseURL   string
	http      *http.Client
	validator *validation.TodoValidator
}

// NewClient creates a client for the server at baseURL. timeout bounds each
// HTTP exchange; zero means none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client that sends requests through hc.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      hc,
		validator: validation.NewTodoValidator(),
	}
}

// GetTodos fetches every task, newest first.
func (c *Client) GetTodos(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.call(ctx, http.MethodGet, ProcGetTodos, nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	if err := c.validator.ValidateTasks(tasks); err != nil {
		return nil, fmt.Errorf("%s: invalid response: %w", ProcGetTodos, err)
	}
	return tasks, nil
}

// CreateTodo creates a task and returns it as stored.
func (c *Client) CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	var task domain.Task
	if err := c.call(ctx, http.MethodPost, ProcCreateTodo, in, &task); err != nil {
		return nil, err
	}
	if err := c.validator.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("%s: invalid response: %w", ProcCreateTodo, err)
	}
	return &task, nil
}

// DeleteTodo deletes the task with id. Success is false when none matched.
func (c *Client) DeleteTodo(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	var result domain.DeleteResult
	if err := c.call(ctx, http.MethodPost, ProcDeleteTodo, domain.NewDeleteTaskInput(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: %s", resp.Status)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, procedure string, input, out interface{}) error {
	endpoint := c.baseURL + "/trpc/" + procedure

	var body io.Reader
	if input != nil {
		raw, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("%s: encode input: %w", procedure, err)
		}
		if method == http.MethodPost {
			body = bytes.NewReader(raw)
		} else {
			endpoint += "?input=" + url.QueryEscape(string(raw))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%s: %w", procedure, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", procedure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", procedure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeRemoteError(procedure, requestID, resp, raw)
	}

	var env SuccessEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: decode response: %w", procedure, err)
	}
	if err := json.Unmarshal(env.Result.Data, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", procedure, err)
	}
	return nil
}

func decodeRemoteError(procedure, requestID string, resp *http.Response, raw []byte) error {
	remote := &RemoteError{
		StatusCode: resp.StatusCode,
		Code:       CodeInternal,
		Message:    resp.Status,
		Procedure:  procedure,
		RequestID:  requestID,
	}

	var env ErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Code != "" {
		remote.Code = env.Error.Code
		remote.Message = env.Error.Message
		remote.FieldErrors = env.Error.Data.FieldErrors
	}
	return remote
}
