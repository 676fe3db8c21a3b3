// Package manager owns the task collection and renders it into a view.Surface.
//
// The collection is kept in insertion order and duplicates are allowed. Pin,
// unpin and toggle address tasks by exact name and act on the first match.
package manager

import (
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"pintask/internal/seed"
	"pintask/internal/task"
	"pintask/internal/view"
)

const (
	// ErrorDisplayDuration is how long a message stays in the error slot.
	ErrorDisplayDuration = 2 * time.Second

	// EmptyFieldMessage is shown when Enter is pressed on a blank input.
	EmptyFieldMessage = "Field cannot be empty"

	// NoTasksPlaceholder fills the unpinned view when nothing matches.
	NoTasksPlaceholder = "No tasks"

	// NoPinnedPlaceholder fills the pinned view when nothing is pinned.
	NoPinnedPlaceholder = "No pinned tasks"

	// PinnedLabel and UnpinnedLabel label the per-row toggle.
	PinnedLabel   = "v"
	UnpinnedLabel = "○"
)

// Manager is the task list controller.
type Manager struct {
	mu      sync.Mutex
	tasks   []task.Task
	surface view.Surface

	scheduler   Scheduler
	errDuration time.Duration
	errGen      uint64
	stopClear   func()

	log *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithScheduler replaces the timer used to clear the error slot.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) { m.scheduler = s }
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithErrorDuration overrides ErrorDisplayDuration.
func WithErrorDuration(d time.Duration) Option {
	return func(m *Manager) { m.errDuration = d }
}

// New creates a Manager rendering into surface.
func New(surface view.Surface, opts ...Option) *Manager {
	m := &Manager{
		surface:     surface,
		scheduler:   TimerScheduler{},
		errDuration: ErrorDisplayDuration,
		log:         log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize renders both views from the current state.
func (m *Manager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresh()
}

// Add appends an unpinned task and re-renders. A blank name is rejected with a
// *ValidationError wrapping ErrEmptyName and leaves the collection unchanged.
func (m *Manager) Add(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &ValidationError{Input: name, Err: ErrEmptyName}
	}
	m.tasks = append(m.tasks, task.New(trimmed))
	m.log.Printf("added task %q (%d total)", trimmed, len(m.tasks))
	m.refresh()
	return nil
}

// Submit handles Enter on the input: the trimmed input becomes a new task and
// the input is cleared. A blank input shows EmptyFieldMessage instead.
func (m *Manager) Submit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := strings.TrimSpace(m.surface.Input())
	if name == "" {
		m.showError(EmptyFieldMessage)
		return
	}
	m.tasks = append(m.tasks, task.New(name))
	m.log.Printf("submitted task %q (%d total)", name, len(m.tasks))
	m.surface.SetInput("")
	m.refresh()
}

// HandleInput is the live filter: it stores value as the current input and
// renders the substring matches as plain rows.
func (m *Manager) HandleInput(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.surface.SetInput(value)
	m.render(m.filter(value))
}

// Filter returns the tasks whose name contains query, ignoring case.
func (m *Manager) Filter(query string) []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter(query)
}

func (m *Manager) filter(query string) []task.Task {
	q := strings.ToLower(query)
	result := []task.Task{}
	for _, t := range m.tasks {
		if strings.Contains(strings.ToLower(t.Name), q) {
			result = append(result, t)
		}
	}
	return result
}

// Render replaces the unpinned view with one plain row per task.
func (m *Manager) Render(tasks []task.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.render(tasks)
}

func (m *Manager) render(tasks []task.Task) {
	region := m.surface.Unpinned()
	region.Clear()
	for _, t := range tasks {
		region.Append(view.Row{TaskID: t.ID, Name: t.Name})
	}
}

// Refresh re-renders both views, filtering the unpinned one by the current
// input.
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresh()
}

func (m *Manager) refresh() {
	m.refreshUnpinned(m.surface.Input())
}

// RefreshUnpinned renders the unpinned tasks whose name starts with query,
// ignoring case, then re-renders the pinned view.
func (m *Manager) RefreshUnpinned(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshUnpinned(query)
}

func (m *Manager) refreshUnpinned(query string) {
	prefix := strings.ToLower(query)
	region := m.surface.Unpinned()
	region.Clear()

	matched := 0
	for _, t := range m.tasks {
		if t.IsPinned || !strings.HasPrefix(strings.ToLower(t.Name), prefix) {
			continue
		}
		m.renderRow(t)
		matched++
	}
	if matched == 0 {
		region.SetPlaceholder(NoTasksPlaceholder)
	}

	m.refreshPinned()
}

// RefreshPinned re-renders the pinned view.
func (m *Manager) RefreshPinned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshPinned()
}

func (m *Manager) refreshPinned() {
	region := m.surface.Pinned()
	region.Clear()

	pinned := 0
	for _, t := range m.tasks {
		if !t.IsPinned {
			continue
		}
		m.renderRow(t)
		pinned++
	}
	if pinned == 0 {
		region.SetPlaceholder(NoPinnedPlaceholder)
	}
}

// renderRow appends t with its toggle to the view matching its pin state.
func (m *Manager) renderRow(t task.Task) {
	row := view.Row{TaskID: t.ID, Name: t.Name}
	if t.IsPinned {
		row.Toggle = &view.Toggle{Label: PinnedLabel, Action: view.ActionUnpin}
		m.surface.Pinned().Append(row)
		return
	}
	row.Toggle = &view.Toggle{Label: UnpinnedLabel, Action: view.ActionPin}
	m.surface.Unpinned().Append(row)
}

// TogglePin flips the pin state of the first task named name.
// Reports whether a task was found.
func (m *Manager) TogglePin(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(name)
	if i < 0 {
		return false
	}
	m.tasks[i].IsPinned = !m.tasks[i].IsPinned
	m.log.Printf("toggled %q, pinned=%t", name, m.tasks[i].IsPinned)
	m.refresh()
	return true
}

// Pin pins the first task named name. Reports whether anything changed.
func (m *Manager) Pin(name string) bool {
	return m.setPinned(name, true)
}

// Unpin unpins the first task named name. Reports whether anything changed.
func (m *Manager) Unpin(name string) bool {
	return m.setPinned(name, false)
}

func (m *Manager) setPinned(name string, pinned bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.find(name)
	if i < 0 || m.tasks[i].IsPinned == pinned {
		return false
	}
	m.tasks[i].IsPinned = pinned
	m.log.Printf("set %q pinned=%t", name, pinned)
	m.refresh()
	return true
}

// find returns the index of the first task named name, or -1.
func (m *Manager) find(name string) int {
	for i, t := range m.tasks {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// ShowError writes message to the error slot and clears it after the error
// display duration. A newer message is never cleared by an older timer.
func (m *Manager) ShowError(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showError(message)
}

func (m *Manager) showError(message string) {
	if m.stopClear != nil {
		m.stopClear()
	}
	m.errGen++
	gen := m.errGen
	m.surface.SetError(message)
	m.stopClear = m.scheduler.AfterFunc(m.errDuration, func() {
		m.clearError(gen)
	})
}

func (m *Manager) clearError(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.errGen {
		return
	}
	m.surface.SetError("")
	m.stopClear = nil
}

// Seed adds entries in order and pins those marked pinned, rendering once at
// the end. Entries with blank names are skipped; the count is returned.
func (m *Manager) Seed(entries []seed.Entry) (skipped int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			skipped++
			continue
		}
		t := task.New(name)
		t.IsPinned = e.Pinned
		m.tasks = append(m.tasks, t)
	}
	m.log.Printf("seeded %d tasks, skipped %d", len(entries)-skipped, skipped)
	m.refresh()
	return skipped
}

// Tasks returns a copy of the collection in insertion order.
func (m *Manager) Tasks() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]task.Task, len(m.tasks))
	copy(result, m.tasks)
	return result
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
