// Package ui provides the interactive task board.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/nibzard/task-tracker/internal/task"
)

// ErrNotTTY is returned when the board is started without a terminal.
var ErrNotTTY = errors.New("board requires a TTY")

// BoardOption configures the board.
type BoardOption func(*Board)

// WithPath sets the task file path shown in the board header.
func WithPath(path string) BoardOption {
	return func(b *Board) {
		b.path = path
	}
}

// WithClock overrides the clock used for relative timestamps.
func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) {
		b.now = now
	}
}

// RunBoard starts the board on the terminal and returns when the user quits.
// The store is mutated in place; persisting it is the caller's job.
func RunBoard(ctx context.Context, store *task.Store, opts ...BoardOption) error {
	if !IsTTY(os.Stdout) {
		return ErrNotTTY
	}
	return runProgram(ctx, NewBoard(store, opts...))
}

func runProgram(ctx context.Context, model *Board) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

type boardMode int

const (
	modeBrowse boardMode = iota
	modeAdd
	modeEdit
)

// Board is the bubbletea model of the task board.
type Board struct {
	store   *task.Store
	path    string
	now     func() time.Time
	keys    keyMap
	help    help.Model
	input   textinput.Model
	mode    boardMode
	editID  int
	filter  task.Status // empty shows every task
	visible []task.Task
	cursor  int
	message string
	failed  bool
}

// NewBoard creates a board over store.
func NewBoard(store *task.Store, opts ...BoardOption) *Board {
	ti := textinput.New()
	ti.Placeholder = "Describe the task..."
	ti.CharLimit = 0
	ti.Width = 60

	b := &Board{
		store: store,
		now:   time.Now,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: ti,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.refresh()
	return b
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		if b.mode != modeBrowse {
			return b.handleInputKeys(msg)
		}
		return b.handleBrowseKeys(msg)
	}

	if b.mode != modeBrowse {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *Board) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.visible)-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keys.Todo):
		b.mark(task.StatusTodo)
	case key.Matches(msg, b.keys.InProgress):
		b.mark(task.StatusInProgress)
	case key.Matches(msg, b.keys.Done):
		b.mark(task.StatusDone)
	case key.Matches(msg, b.keys.Delete):
		b.delete()
	case key.Matches(msg, b.keys.Add):
		b.mode = modeAdd
		b.input.Reset()
		b.input.Focus()
		return b, textinput.Blink
	case key.Matches(msg, b.keys.Edit):
		t, ok := b.selected()
		if !ok {
			return b, nil
		}
		b.mode = modeEdit
		b.editID = t.ID
		b.input.Reset()
		b.input.SetValue(t.Description)
		b.input.CursorEnd()
		b.input.Focus()
		return b, textinput.Blink
	case key.Matches(msg, b.keys.ShowAll):
		b.setFilter("")
	case key.Matches(msg, b.keys.ShowTodo):
		b.setFilter(task.StatusTodo)
	case key.Matches(msg, b.keys.ShowDoing):
		b.setFilter(task.StatusInProgress)
	case key.Matches(msg, b.keys.ShowDone):
		b.setFilter(task.StatusDone)
	case key.Matches(msg, b.keys.Help):
		b.help.ShowAll = !b.help.ShowAll
	}
	return b, nil
}

func (b *Board) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return b, tea.Quit
	case "esc":
		b.closeInput()
		return b, nil
	case "enter":
		description := strings.TrimSpace(b.input.Value())
		if description == "" {
			b.setMessage("Description cannot be empty", true)
			return b, nil
		}
		if b.mode == modeAdd {
			id := b.store.Add(description)
			b.setMessage(fmt.Sprintf("Task added: %d", id), false)
		} else if b.store.UpdateDescription(b.editID, description) {
			b.setMessage(fmt.Sprintf("Updated task %d with description %s", b.editID, description), false)
		} else {
			b.setMessage(fmt.Sprintf("Failed to update task %d with description %s", b.editID, description), true)
		}
		b.closeInput()
		b.refresh()
		return b, nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *Board) closeInput() {
	b.mode = modeBrowse
	b.editID = 0
	b.input.Blur()
	b.input.Reset()
}

func (b *Board) mark(status task.Status) {
	t, ok := b.selected()
	if !ok {
		return
	}
	if b.store.UpdateStatus(t.ID, status) {
		b.setMessage(fmt.Sprintf("Marked task %d %s", t.ID, status.Label()), false)
	} else {
		b.setMessage(fmt.Sprintf("Marked task %d %s failed", t.ID, status.Label()), true)
	}
	b.refresh()
}

func (b *Board) delete() {
	t, ok := b.selected()
	if !ok {
		return
	}
	if b.store.Delete(t.ID) {
		b.setMessage(fmt.Sprintf("Task deleted: %d", t.ID), false)
	} else {
		b.setMessage(fmt.Sprintf("Task could not be deleted: %d", t.ID), true)
	}
	b.refresh()
}

func (b *Board) setFilter(status task.Status) {
	b.filter = status
	b.cursor = 0
	b.refresh()
}

func (b *Board) setMessage(msg string, failed bool) {
	b.message = msg
	b.failed = failed
}

// refresh rebuilds the visible rows from the store and keeps the cursor in
// range.
func (b *Board) refresh() {
	if b.filter == "" {
		b.visible = b.store.ListAll()
	} else {
		b.visible = b.store.ListByStatus(b.filter)
	}
	if b.cursor >= len(b.visible) {
		b.cursor = len(b.visible) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *Board) selected() (task.Task, bool) {
	if len(b.visible) == 0 {
		return task.Task{}, false
	}
	return b.visible[b.cursor], true
}

// View implements tea.Model.
func (b *Board) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Task Tracker"))
	sb.WriteString("\n")
	if b.path != "" {
		sb.WriteString(subtleStyle.Render(b.path) + "\n\n")
	}

	writeOverview(&sb, b.store.Counts())

	if b.filter != "" {
		sb.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", b.filter.Label()))
	}

	if len(b.visible) == 0 {
		sb.WriteString(subtleStyle.Render("  No tasks found") + "\n")
	}
	now := b.now()
	for i, t := range b.visible {
		sb.WriteString(formatRow(t, i == b.cursor, now))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	switch b.mode {
	case modeAdd:
		sb.WriteString("New task: " + b.input.View() + "\n\n")
	case modeEdit:
		sb.WriteString(fmt.Sprintf("Edit task %d: %s\n\n", b.editID, b.input.View()))
	}

	if b.message != "" {
		style := messageStyle
		if b.failed {
			style = errorStyle
		}
		sb.WriteString(style.Render(b.message) + "\n\n")
	}

	sb.WriteString(b.help.View(b.keys))
	sb.WriteString("\n")
	return sb.String()
}

func writeOverview(sb *strings.Builder, counts map[task.Status]int) {
	sb.WriteString(fmt.Sprintf("Todo: %d  In progress: %d  Done: %d\n\n",
		counts[task.StatusTodo],
		counts[task.StatusInProgress],
		counts[task.StatusDone],
	))
}

func formatRow(t task.Task, selected bool, now time.Time) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	statusIcon := "[ ]"
	switch t.Status {
	case task.StatusInProgress:
		statusIcon = inProgressStyle.Render("[>]")
	case task.StatusDone:
		statusIcon = doneStyle.Render("[x]")
	}

	text := fmt.Sprintf("%d. %s", t.ID, t.Description)
	if selected {
		text = selectedStyle.Render(text)
	}

	age := "created " + humanize.RelTime(t.CreatedAt, now, "ago", "from now")
	if t.UpdatedAt != nil {
		age += ", updated " + humanize.RelTime(*t.UpdatedAt, now, "ago", "from now")
	}
	return fmt.Sprintf("%s%s %s  %s", cursor, statusIcon, text, subtleStyle.Render(age))
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
