// Package task defines the task entity and its single-line record encoding.
package task

// Task represents a single to-do item.
type Task struct {
	ID        int
	Title     string
	Notes     string
	Completed bool
}
