// Package store owns the ordered task collection and its persistence.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"ftask/internal/task"
)

// ErrNotFound reports that the persistence target does not exist yet.
// It is not fatal: a first run has no tasks file and callers proceed
// with an empty store.
var ErrNotFound = errors.New("tasks file not found")

// Store holds the in-memory task collection and is the sole authority on
// id assignment. The collection is the single source of truth between an
// explicit Load and Save. Not safe for concurrent use; the program is
// single threaded.
type Store struct {
	path   string
	tasks  []task.Task
	nextID int

	// Debugf, when set, receives a notice for every line skipped during
	// Load. It never changes what Load returns.
	Debugf func(format string, args ...any)
}

// New creates a store persisting to path. No I/O happens until Load or Save.
func New(path string) *Store {
	return &Store{path: path, nextID: 1}
}

// Path returns the persistence target.
func (s *Store) Path() string { return s.path }

// Load replaces the in-memory collection with the contents of the
// persistence target. A missing file returns ErrNotFound and leaves the
// collection untouched. Blank lines are ignored and lines that fail to
// decode are skipped without error; only the open step is reported. The
// next id is recomputed as one past the largest id seen in the file.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var (
		tasks   []task.Task
		maxSeen int
	)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := task.DecodeRecord(line)
		if err != nil {
			if s.Debugf != nil {
				s.Debugf("skipping line %q: %v", line, err)
			}
			continue
		}
		tasks = append(tasks, t)
		if t.ID > maxSeen {
			maxSeen = t.ID
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	s.tasks = tasks
	s.nextID = maxSeen + 1
	return nil
}

// Save overwrites the persistence target with the whole collection, one
// record per line with a trailing newline. The file is truncated before
// the write; there is no partial-write recovery.
func (s *Store) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", s.path, err)
	}
	w := bufio.NewWriter(f)
	for _, t := range s.tasks {
		w.WriteString(task.EncodeRecord(t))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Add appends a new open task and returns its freshly assigned id.
// Ids increase monotonically and are never reused, even after deletion.
// Title validation is the caller's responsibility.
func (s *Store) Add(title, notes string) int {
	t := task.Task{ID: s.nextID, Title: title, Notes: notes}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t.ID
}

// RemoveByID deletes the task with the given id, preserving the relative
// order of the remaining tasks. It reports whether the id was found.
func (s *Store) RemoveByID(id int) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleComplete flips the completion flag of the task with the given id.
// It reports whether the id was found.
func (s *Store) ToggleComplete(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// Edit updates the task with the given id. An empty title or notes
// argument means "leave that field unchanged"; there is no way to clear
// a field to empty through Edit. It reports whether the id was found.
func (s *Store) Edit(id int, title, notes string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			if title != "" {
				s.tasks[i].Title = title
			}
			if notes != "" {
				s.tasks[i].Notes = notes
			}
			return true
		}
	}
	return false
}

// List returns a copy of all tasks in insertion order (file order after a
// Load). Mutating the returned slice does not affect the store.
func (s *Store) List() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int { return len(s.tasks) }

// Clear empties the in-memory collection. The persistence target is not
// touched until an explicit Save.
func (s *Store) Clear() {
	s.tasks = nil
}
