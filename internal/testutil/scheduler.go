package testutil

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a manager.Scheduler driven by Advance instead of wall
// time. Callbacks run on the goroutine calling Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*scheduled
}

type scheduled struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements manager.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	item := &scheduled{at: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, item)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		item.stopped = true
	}
}

// Advance moves the clock forward by d and runs every callback that became
// due, in due order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due, rest []*scheduled
	for _, item := range s.pending {
		if item.at <= s.now {
			due = append(due, item)
		} else {
			rest = append(rest, item)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, item := range due {
		s.mu.Lock()
		stopped := item.stopped
		s.mu.Unlock()
		if !stopped {
			item.fn()
		}
	}
}

// Pending returns the number of callbacks not yet run or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.pending {
		if !item.stopped {
			n++
		}
	}
	return n
}
