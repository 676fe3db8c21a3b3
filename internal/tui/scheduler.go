package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// runMsg carries a deferred manager callback into the update loop.
type runMsg struct {
	fn func()
}

// Scheduler is a manager.Scheduler whose callbacks run on the program's
// update loop instead of a timer goroutine.
type Scheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewScheduler creates a Scheduler. Until Attach is called callbacks run
// directly on the timer goroutine.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Attach routes callbacks through send, normally (*tea.Program).Send.
func (s *Scheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// AfterFunc implements manager.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() { s.deliver(fn) })
	return func() { t.Stop() }
}

func (s *Scheduler) deliver(fn func()) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send == nil {
		fn()
		return
	}
	send(runMsg{fn: fn})
}
