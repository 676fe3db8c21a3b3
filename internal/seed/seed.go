// Package seed defines read-only sources of initial tasks for a session.
//
// Sources are loaded once at startup. Nothing is written back to them.
package seed

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a named list does not exist in a source.
var ErrNotFound = errors.New("not found")

// Entry is a task to create at startup.
type Entry struct {
	Name   string `yaml:"name"`
	Pinned bool   `yaml:"pinned"`
}

// Source loads seed entries.
type Source interface {
	// Name identifies the source in error messages.
	Name() string

	// Load returns entries in source order.
	Load(ctx context.Context) ([]Entry, error)
}

// Static is a Source backed by a fixed slice, typically from config.yaml.
type Static []Entry

// Name implements Source.
func (s Static) Name() string { return "config" }

// Load implements Source.
func (s Static) Load(ctx context.Context) ([]Entry, error) {
	result := make([]Entry, len(s))
	copy(result, s)
	return result, nil
}

// Multi loads each source in order and concatenates the results.
type Multi []Source

// Name implements Source.
func (m Multi) Name() string { return "multi" }

// Load implements Source. The first failing source aborts the load.
func (m Multi) Load(ctx context.Context) ([]Entry, error) {
	var all []Entry
	for _, src := range m {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Name(), err)
		}
		all = append(all, entries...)
	}
	return all, nil
}
