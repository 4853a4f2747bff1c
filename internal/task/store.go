package task

import (
	"sort"
	"time"
)

// Task represents a single tracked task.
type Task struct {
	ID          int
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Store is the authoritative in-memory task collection.
type Store struct {
	tasks  []Task
	lastID int
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store holding a copy of tasks sorted ascending by id.
func NewStore(tasks []Task, opts ...Option) *Store {
	s := &Store{
		tasks: make([]Task, len(tasks)),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	copy(s.tasks, tasks)
	for _, opt := range opts {
		opt(s)
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].ID < s.tasks[j].ID
	})
	for i := range s.tasks {
		if s.tasks[i].ID > s.lastID {
			s.lastID = s.tasks[i].ID
		}
	}
	return s
}

// Add appends a new todo task and returns its id.
func (s *Store) Add(description string) int {
	s.lastID++
	s.tasks = append(s.tasks, Task{
		ID:          s.lastID,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   s.now(),
	})
	return s.lastID
}

// UpdateDescription replaces the description of the task with the given id.
// It returns false if no such task exists.
func (s *Store) UpdateDescription(id int, description string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Description = description
	s.touch(i)
	return true
}

// UpdateStatus sets the status of the task with the given id. It returns
// false if no such task exists or status is not a declared status.
func (s *Store) UpdateStatus(id int, status Status) bool {
	if !status.Valid() {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Status = status
	s.touch(i)
	return true
}

// Delete removes the task with the given id and reports whether one was
// removed.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// ListAll returns every task grouped by status (todo, in_progress, done).
// Tasks with the same status keep their relative store order.
func (s *Store) ListAll() []Task {
	out := s.Tasks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.Rank() < out[j].Status.Rank()
	})
	return out
}

// ListByStatus returns the tasks whose status equals status, in store order.
func (s *Store) ListByStatus(status Status) []Task {
	out := make([]Task, 0)
	for i := range s.tasks {
		if s.tasks[i].Status == status {
			out = append(out, s.tasks[i])
		}
	}
	return out
}

// Tasks returns a copy of the collection in store order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Counts returns the number of tasks per status. Every declared status is
// present in the result.
func (s *Store) Counts() map[Status]int {
	counts := make(map[Status]int, len(Statuses()))
	for _, status := range Statuses() {
		counts[status] = 0
	}
	for i := range s.tasks {
		counts[s.tasks[i].Status]++
	}
	return counts
}

func (s *Store) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// touch stamps UpdatedAt, never earlier than CreatedAt.
func (s *Store) touch(i int) {
	now := s.now()
	if now.Before(s.tasks[i].CreatedAt) {
		now = s.tasks[i].CreatedAt
	}
	s.tasks[i].UpdatedAt = &now
}
