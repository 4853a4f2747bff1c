package taskfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/task-tracker/internal/logging"
	"github.com/nibzard/task-tracker/internal/task"
)

// DefaultPath is the document location relative to the working directory.
const DefaultPath = "tasks.json"

// TimeLayout is the fixed layout used to write timestamps.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// legacyTimeLayouts match zone-less ISO local date-times. Seconds are
// omitted when they are zero.
var legacyTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ErrDuplicateID is returned when the document holds two tasks with one id.
var ErrDuplicateID = errors.New("duplicate task id")

// record is the wire form of a task.
type record struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

// File reads and writes the task document at a fixed path.
type File struct {
	path     string
	validate bool
	logger   *log.Logger
}

// Option configures a File.
type Option func(*File)

// WithLogger sets the logger used for load and save events.
func WithLogger(logger *log.Logger) Option {
	return func(f *File) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithSchemaValidation enables or disables JSON Schema validation on load.
func WithSchemaValidation(enabled bool) Option {
	return func(f *File) {
		f.validate = enabled
	}
}

// New creates a File for path. An empty path means DefaultPath.
func New(path string, opts ...Option) *File {
	if path == "" {
		path = DefaultPath
	}
	f := &File{
		path:     path,
		validate: true,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// Load reads the whole document and returns its tasks sorted by id. A
// missing document is first created as an empty array.
func (f *File) Load() ([]task.Task, error) {
	if err := f.ensureExists(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if f.validate {
		if err := validate(data); err != nil {
			return nil, fmt.Errorf("validate task file %s: %w", f.path, err)
		}
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	tasks, err := decodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})

	f.logger.Debug("loaded tasks", "path", f.path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the document with tasks, in the order given.
func (f *File) Save(tasks []task.Task) error {
	records := make([]record, len(tasks))
	for i := range tasks {
		records[i] = encodeRecord(tasks[i])
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := writeAtomic(f.path, data); err != nil {
		return err
	}

	f.logger.Debug("saved tasks", "path", f.path, "count", len(tasks))
	return nil
}

func (f *File) ensureExists() error {
	_, err := os.Stat(f.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat task file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create task file dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, []byte("[]"), 0644); err != nil {
		return fmt.Errorf("initialize task file: %w", err)
	}
	f.logger.Debug("initialized empty task file", "path", f.path)
	return nil
}

// writeAtomic writes data to a temp file next to path and renames it over
// path.
func writeAtomic(path string, data []byte) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp task file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}

func decodeRecords(records []record) ([]task.Task, error) {
	tasks := make([]task.Task, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		if seen[r.ID] {
			return nil, fmt.Errorf("[%d].id: %w %d", i, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true

		t, err := decodeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeRecord(r record) (task.Task, error) {
	status, err := decodeStatus(r.Status)
	if err != nil {
		return task.Task{}, err
	}

	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("createdAt: %w", err)
	}

	t := task.Task{
		ID:          r.ID,
		Description: r.Description,
		Status:      status,
		CreatedAt:   createdAt,
	}
	if r.UpdatedAt != nil {
		updatedAt, err := parseTime(*r.UpdatedAt)
		if err != nil {
			return task.Task{}, fmt.Errorf("updatedAt: %w", err)
		}
		t.UpdatedAt = &updatedAt
	}
	return t, nil
}

func encodeRecord(t task.Task) record {
	r := record{
		ID:          t.ID,
		Description: t.Description,
		Status:      encodeStatus(t.Status),
		CreatedAt:   formatTime(t.CreatedAt),
	}
	if t.UpdatedAt != nil {
		updatedAt := formatTime(*t.UpdatedAt)
		r.UpdatedAt = &updatedAt
	}
	return r
}

func encodeStatus(s task.Status) string {
	return strings.ToUpper(string(s))
}

func decodeStatus(s string) (task.Status, error) {
	status := task.Status(strings.ToLower(s))
	if !status.Valid() {
		return "", fmt.Errorf("status: %w %q", task.ErrInvalidStatus, s)
	}
	return status, nil
}

func formatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
