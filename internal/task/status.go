package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned when a token does not name a status.
var ErrInvalidStatus = errors.New("invalid status")

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses returns every status in declaration order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Rank returns the position of s in declaration order, or -1 if s is not a
// declared status.
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	default:
		return -1
	}
}

// Label returns the human-readable form used in listings.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	default:
		return string(s)
	}
}

// ParseStatus maps a user token to a Status. Matching is case-insensitive
// and treats '-' and '_' alike, so "in-progress" and "IN_PROGRESS" both
// name StatusInProgress.
func ParseStatus(token string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	s := Status(normalized)
	if !s.Valid() {
		return "", fmt.Errorf("%w %q, must be one of: todo, in-progress, done", ErrInvalidStatus, token)
	}
	return s, nil
}
