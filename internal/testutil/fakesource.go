// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"pintask/internal/seed"
)

// FakeSource is an in-memory seed.Source for testing.
type FakeSource struct {
	mu      sync.Mutex
	entries []seed.Entry
	loads   int

	// LoadErr, when set, is returned by Load.
	LoadErr error
}

// NewFakeSource creates a FakeSource returning entries.
func NewFakeSource(entries ...seed.Entry) *FakeSource {
	return &FakeSource{entries: entries}
}

// AddTask appends an unpinned entry.
func (f *FakeSource) AddTask(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, seed.Entry{Name: name})
}

// AddPinned appends a pinned entry.
func (f *FakeSource) AddPinned(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, seed.Entry{Name: name, Pinned: true})
}

// Loads returns how many times Load was called.
func (f *FakeSource) Loads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

// Name implements seed.Source.
func (f *FakeSource) Name() string { return "fake" }

// Load implements seed.Source.
func (f *FakeSource) Load(ctx context.Context) ([]seed.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	result := make([]seed.Entry, len(f.entries))
	copy(result, f.entries)
	return result, nil
}
