// Package tui is the interactive terminal client. It holds a local copy of the
// todo list, loaded once at start, and patches it after each successful call.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/domain"
	"todo-list/internal/logging"
)

// Client is the subset of the RPC client the TUI drives.
type Client interface {
	GetTodos(ctx context.Context) ([]domain.Task, error)
	CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)
	DeleteTodo(ctx context.Context, id int64) (*domain.DeleteResult, error)
}

// Options controls presentation.
type Options struct {
	TimeFormat string
}

type mode int

const (
	browsing mode = iota
	enteringTitle
	enteringDescription
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tasksLoadedMsg struct {
	tasks []domain.Task
	err   error
}

type taskCreatedMsg struct {
	task *domain.Task
	err  error
}

type taskDeletedMsg struct {
	id     int64
	result *domain.DeleteResult
	err    error
}

// Model implements tea.Model.
type Model struct {
	ctx    context.Context
	client Client
	opts   Options

	tasks  []domain.Task
	loaded bool
	cursor int
	mode   mode
	input  textinput.Model
	title  string // held while the description is entered
	status string
	failed bool
}

// New builds a Model. Nothing is fetched until Init runs.
func New(ctx context.Context, client Client, opts Options) Model {
	if opts.TimeFormat == "" {
		opts.TimeFormat = "2006-01-02 15:04"
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 500

	return Model{
		ctx:    ctx,
		client: client,
		opts:   opts,
		tasks:  []domain.Task{},
		input:  ti,
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, client Client, opts Options) error {
	p := tea.NewProgram(New(ctx, client, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Tasks returns the local copy of the list.
func (m Model) Tasks() []domain.Task {
	return m.tasks
}

func (m Model) Init() tea.Cmd {
	return m.loadTasks()
}

func (m Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.client.GetTodos(m.ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) createTask(in domain.CreateTaskInput) tea.Cmd {
	return func() tea.Msg {
		task, err := m.client.CreateTodo(m.ctx, in)
		return taskCreatedMsg{task: task, err: err}
	}
}

func (m Model) deleteTask(id int64) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.DeleteTodo(m.ctx, id)
		return taskDeletedMsg{id: id, result: result, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.err != nil {
			return m.fail("getTodos", msg.err), nil
		}
		m.tasks = msg.tasks
		if m.tasks == nil {
			m.tasks = []domain.Task{}
		}
		m.loaded = true
		m.clampCursor()
		return m, nil

	case taskCreatedMsg:
		if msg.err != nil {
			return m.fail("createTodo", msg.err), nil
		}
		m.tasks = append(m.tasks, *msg.task)
		m.setStatus(fmt.Sprintf("added #%d", msg.task.ID), false)
		return m, nil

	case taskDeletedMsg:
		if msg.err != nil {
			return m.fail("deleteTodo", msg.err), nil
		}
		if msg.result == nil || !msg.result.Success {
			m.setStatus(fmt.Sprintf("#%d was already gone", msg.id), false)
			return m, nil
		}
		m.removeTask(msg.id)
		m.setStatus(fmt.Sprintf("deleted #%d", msg.id), false)
		return m, nil

	case tea.KeyMsg:
		if m.mode != browsing {
			return m.updateInput(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.mode != browsing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		m.mode = enteringTitle
		m.input.Placeholder = "Title"
		m.input.SetValue("")
		m.status = ""
		return m, m.input.Focus()
	case key.Matches(msg, keys.Delete):
		if len(m.tasks) == 0 {
			return m, nil
		}
		return m, m.deleteTask(m.tasks[m.cursor].ID)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.resetInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		value := m.input.Value()
		if value == "" {
			if m.mode == enteringTitle {
				m.setStatus("Title is required", true)
			} else {
				m.setStatus("Description is required", true)
			}
			return m, nil
		}
		if m.mode == enteringTitle {
			m.title = value
			m.mode = enteringDescription
			m.input.Placeholder = "Description"
			m.input.SetValue("")
			m.status = ""
			return m, nil
		}
		in := domain.CreateTaskInput{Title: m.title, Description: value}
		m.resetInput()
		return m, m.createTask(in)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resetInput() {
	m.mode = browsing
	m.title = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) removeTask(id int64) {
	kept := make([]domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// fail logs a call failure and reports it in the status line. The list is left
// exactly as it was.
func (m Model) fail(procedure string, err error) Model {
	logging.Errorf("%s failed: %v", procedure, err)
	m.setStatus(fmt.Sprintf("%s failed: %v", procedure, err), true)
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d", len(m.tasks))))
	b.WriteString("\n\n")

	switch {
	case !m.loaded && m.status == "":
		b.WriteString(mutedStyle.Render("loading..."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(mutedStyle.Render("nothing to do"))
		b.WriteString("\n")
	default:
		var lines []string
		for i, t := range m.tasks {
			prefix := "  "
			if i == m.cursor {
				prefix = selectedStyle.Render("> ")
			}
			lines = append(lines, fmt.Sprintf("%s%s %s  %s",
				prefix,
				accentStyle.Render(fmt.Sprintf("#%d", t.ID)),
				t.Title,
				mutedStyle.Render(t.CreatedAt.Local().Format(m.opts.TimeFormat)),
			))
			lines = append(lines, "     "+t.Description)
		}
		b.WriteString(panelStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	if m.mode != browsing {
		label := "New todo title"
		if m.mode == enteringDescription {
			label = fmt.Sprintf("Description for %q", m.title)
		}
		b.WriteString("\n" + label + "\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		style := successStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	help := "enter: next  esc: cancel"
	if m.mode == browsing {
		help = "↑/↓: move  a: add  d: delete  q: quit"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}
