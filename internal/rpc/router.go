// Package rpc exposes the todo procedures over HTTP in the tRPC wire format
// and provides a typed client for them.
package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"todo-list/internal/errors"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// Procedure names as they appear in the URL.
const (
	ProcGetTodos   = "getTodos"
	ProcCreateTodo = "createTodo"
	ProcDeleteTodo = "deleteTodo"
)

// Kind tells queries from mutations. Mutations are POST only.
type Kind int

const (
	Query Kind = iota
	Mutation
)

func (k Kind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

// HandlerFunc decodes raw input, runs the procedure and returns its output.
type HandlerFunc func(ctx context.Context, input json.RawMessage) (interface{}, error)

// Procedure binds a name to a handler.
type Procedure struct {
	Name    string
	Kind    Kind
	Handler HandlerFunc
}

// Router is the dispatch table of procedures.
type Router struct {
	procedures map[string]Procedure
}

// NewRouter registers the todo procedures against svc.
func NewRouter(svc services.TodoService) *Router {
	r := &Router{procedures: make(map[string]Procedure)}
	v := validation.NewTodoValidator()

	r.Register(Procedure{
		Name: ProcGetTodos,
		Kind: Query,
		Handler: func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
			return svc.GetTodos(ctx)
		},
	})

	r.Register(Procedure{
		Name: ProcCreateTodo,
		Kind: Mutation,
		Handler: func(ctx context.Context, input json.RawMessage) (interface{}, error) {
			in, err := v.DecodeCreateInput(input)
			if err != nil {
				return nil, err
			}
			return svc.CreateTodo(ctx, in)
		},
	})

	r.Register(Procedure{
		Name: ProcDeleteTodo,
		Kind: Mutation,
		Handler: func(ctx context.Context, input json.RawMessage) (interface{}, error) {
			in, err := v.DecodeDeleteInput(input)
			if err != nil {
				return nil, err
			}
			return svc.DeleteTodo(ctx, in)
		},
	})

	return r
}

// Register adds or replaces a procedure
func (r *Router) Register(p Procedure) {
	r.procedures[p.Name] = p
}

// Lookup finds a procedure by name
func (r *Router) Lookup(name string) (Procedure, bool) {
	p, ok := r.procedures[name]
	return p, ok
}

// Names lists the registered procedures in sorted order
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.procedures))
	for name := range r.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call dispatches input to the named procedure invoked with the given HTTP
// method.
func (r *Router) Call(ctx context.Context, name string, method string, input json.RawMessage) (interface{}, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return nil, errors.NewNotFoundError("procedure", name)
	}
	if p.Kind == Mutation && method != http.MethodPost {
		return nil, errors.NewMethodNotSupportedError(name, method)
	}
	return p.Handler(ctx, input)
}
