package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/task-tracker/internal/task"
)

var boardEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestBoard(t *testing.T, descriptions ...string) (*Board, *task.Store) {
	t.Helper()
	store := task.NewStore(nil, task.WithClock(func() time.Time { return boardEpoch }))
	for _, d := range descriptions {
		store.Add(d)
	}
	board := NewBoard(store, WithClock(func() time.Time { return boardEpoch.Add(90 * time.Second) }))
	return board, store
}

func press(t *testing.T, b *Board, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = b.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBoardMarkStatus(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		id   int
		want task.Status
	}{
		{"in progress on first row", []string{"p"}, 1, task.StatusInProgress},
		{"done after moving down", []string{"j", "d"}, 2, task.StatusDone},
		{"arrow keys move", []string{"down", "down", "up", "d"}, 2, task.StatusDone},
		{"back to todo after regrouping", []string{"d", "j", "j", "t"}, 1, task.StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, store := newTestBoard(t, "first", "second", "third")
			press(t, board, tt.keys...)

			got, ok := store.Get(tt.id)
			if !ok {
				t.Fatalf("task %d missing", tt.id)
			}
			if got.Status != tt.want {
				t.Errorf("status: got %q, want %q", got.Status, tt.want)
			}
			if got.UpdatedAt == nil {
				t.Error("expected UpdatedAt to be set")
			}
		})
	}
}

func TestBoardMarkMessage(t *testing.T) {
	board, _ := newTestBoard(t, "first")
	press(t, board, "p")

	if board.message != "Marked task 1 in progress" {
		t.Errorf("message: got %q", board.message)
	}
	if board.failed {
		t.Error("expected success message")
	}
}

func TestBoardCursorStaysInRange(t *testing.T) {
	board, _ := newTestBoard(t, "first", "second")
	press(t, board, "k", "k")
	if board.cursor != 0 {
		t.Errorf("cursor after moving up past top: got %d, want 0", board.cursor)
	}
	press(t, board, "j", "j", "j")
	if board.cursor != 1 {
		t.Errorf("cursor after moving down past bottom: got %d, want 1", board.cursor)
	}

	press(t, board, "x")
	if board.cursor != 0 {
		t.Errorf("cursor after deleting last row: got %d, want 0", board.cursor)
	}
}

func TestBoardDelete(t *testing.T) {
	board, store := newTestBoard(t, "first", "second")
	press(t, board, "j", "x")

	if store.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", store.Len())
	}
	if _, ok := store.Get(2); ok {
		t.Error("task 2 should be deleted")
	}
	if board.message != "Task deleted: 2" {
		t.Errorf("message: got %q", board.message)
	}
}

func TestBoardActionsOnEmptyStore(t *testing.T) {
	board, store := newTestBoard(t)
	press(t, board, "p", "d", "x", "e")

	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d tasks", store.Len())
	}
	if board.mode != modeBrowse {
		t.Error("edit should not open without a selected task")
	}
	if !strings.Contains(board.View(), "No tasks found") {
		t.Error("expected empty board to show 'No tasks found'")
	}
}

func TestBoardAdd(t *testing.T) {
	board, store := newTestBoard(t, "first")

	press(t, board, "a")
	if board.mode != modeAdd {
		t.Fatal("expected add mode")
	}
	// Navigation keys are text while the input is open.
	press(t, board, "buy milk", "j", "enter")

	if store.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", store.Len())
	}
	got, _ := store.Get(2)
	if got.Description != "buy milkj" {
		t.Errorf("description: got %q, want %q", got.Description, "buy milkj")
	}
	if got.Status != task.StatusTodo {
		t.Errorf("status: got %q, want todo", got.Status)
	}
	if board.mode != modeBrowse {
		t.Error("expected browse mode after enter")
	}
	if board.message != "Task added: 2" {
		t.Errorf("message: got %q", board.message)
	}
}

func TestBoardAddRejectsBlank(t *testing.T) {
	board, store := newTestBoard(t)
	press(t, board, "a", "   ", "enter")

	if store.Len() != 0 {
		t.Errorf("expected no task, got %d", store.Len())
	}
	if board.mode != modeAdd {
		t.Error("input should stay open after a blank submit")
	}
	if !board.failed {
		t.Error("expected failure message")
	}
}

func TestBoardAddCancel(t *testing.T) {
	board, store := newTestBoard(t)
	press(t, board, "a", "draft", "esc")

	if store.Len() != 0 {
		t.Errorf("expected no task, got %d", store.Len())
	}
	if board.mode != modeBrowse {
		t.Error("expected browse mode after esc")
	}
	if board.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", board.input.Value())
	}
}

func TestBoardEdit(t *testing.T) {
	board, store := newTestBoard(t, "first", "second")
	press(t, board, "j", "e")

	if board.mode != modeEdit {
		t.Fatal("expected edit mode")
	}
	if board.input.Value() != "second" {
		t.Errorf("input should start with description, got %q", board.input.Value())
	}

	press(t, board, " draft", "enter")

	got, _ := store.Get(2)
	if got.Description != "second draft" {
		t.Errorf("description: got %q, want %q", got.Description, "second draft")
	}
	if got.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set")
	}
	if board.message != "Updated task 2 with description second draft" {
		t.Errorf("message: got %q", board.message)
	}
}

func TestBoardEditKeepsLongDescription(t *testing.T) {
	long := strings.Repeat("x", 300)
	board, store := newTestBoard(t, long)
	press(t, board, "e", "enter")

	got, _ := store.Get(1)
	if got.Description != long {
		t.Errorf("description length: got %d, want %d", len(got.Description), len(long))
	}
}

func TestBoardFilter(t *testing.T) {
	board, _ := newTestBoard(t, "first", "second", "third")
	press(t, board, "j", "d")

	tests := []struct {
		key  string
		want []int
	}{
		{"3", []int{2}},
		{"1", []int{1, 3}},
		{"2", nil},
		{"0", []int{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			press(t, board, tt.key)
			if len(board.visible) != len(tt.want) {
				t.Fatalf("visible: got %d rows, want %d", len(board.visible), len(tt.want))
			}
			for i, id := range tt.want {
				if board.visible[i].ID != id {
					t.Errorf("row %d: got id %d, want %d", i, board.visible[i].ID, id)
				}
			}
		})
	}
}

func TestBoardMarkUnderFilterDropsRow(t *testing.T) {
	board, store := newTestBoard(t, "first", "second")
	press(t, board, "1", "j", "d")

	if len(board.visible) != 1 || board.visible[0].ID != 1 {
		t.Fatalf("expected only task 1 visible, got %+v", board.visible)
	}
	if board.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", board.cursor)
	}
	if got, _ := store.Get(2); got.Status != task.StatusDone {
		t.Errorf("status: got %q, want done", got.Status)
	}
}

func TestBoardQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"q", []string{"q"}},
		{"ctrl+c", []string{"ctrl+c"}},
		{"ctrl+c while typing", []string{"a", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := newTestBoard(t, "first")
			if cmd := press(t, board, tt.keys...); !isQuit(cmd) {
				t.Error("expected quit command")
			}
		})
	}

	t.Run("q while typing is text", func(t *testing.T) {
		board, _ := newTestBoard(t)
		if cmd := press(t, board, "a", "q"); isQuit(cmd) {
			t.Error("q should not quit while the input is open")
		}
	})
}

func TestBoardHelpToggle(t *testing.T) {
	board, _ := newTestBoard(t)
	press(t, board, "?")
	if !board.help.ShowAll {
		t.Error("expected full help after ?")
	}
	press(t, board, "h")
	if board.help.ShowAll {
		t.Error("expected short help after h")
	}
}

func TestBoardView(t *testing.T) {
	board, _ := newTestBoard(t, "write report", "review")
	board.path = "/tmp/tasks.json"
	press(t, board, "j", "p")

	view := board.View()
	for _, want := range []string{
		"Task Tracker",
		"/tmp/tasks.json",
		"Todo: 1  In progress: 1  Done: 0",
		"1. write report",
		"2. review",
		"created 1 minute ago",
		"Marked task 2 in progress",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer should not be a TTY")
	}
}
