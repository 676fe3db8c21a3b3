// Package task defines the task entity shared by the manager and its views.
package task

import "github.com/google/uuid"

// Task is a named item that is either pinned or unpinned.
type Task struct {
	// ID keys the rendered row. Lookups by the manager use Name, never ID.
	ID string

	// Name is the trimmed, non-empty display name.
	Name string

	// IsPinned places the task in the pinned view.
	IsPinned bool
}

// New returns an unpinned task with the given name.
func New(name string) Task {
	return Task{
		ID:   uuid.NewString(),
		Name: name,
	}
}
