package commands

import (
	"io"
	"log"

	"pintask/internal/manager"
	"pintask/internal/seed"
	"pintask/internal/view"
)

// Session carries what the dispatcher prepared for a task-list command.
type Session struct {
	// Entries are the seed tasks loaded at startup.
	Entries []seed.Entry

	// In is the interactive input stream.
	In io.Reader

	// Log is the debug logger. May be nil.
	Log *log.Logger
}

// NewManager creates a page and a manager seeded with the session entries.
// Both views are rendered before it returns.
func (s *Session) NewManager(opts ...manager.Option) (*manager.Manager, *view.Page) {
	page := view.NewPage()
	if s.Log != nil {
		opts = append([]manager.Option{manager.WithLogger(s.Log)}, opts...)
	}
	m := manager.New(page, opts...)
	if skipped := m.Seed(s.Entries); skipped > 0 && s.Log != nil {
		s.Log.Printf("skipped %d blank seed entries", skipped)
	}
	return m, page
}
