// Package view defines the presentation surface the task manager renders into.
//
// A surface has a text input, an error slot, and two regions: pinned and
// unpinned. The manager only ever replaces or appends region contents; how a
// region is drawn is up to the front-end (TUI, REPL, tests).
package view

// Action is what a row's toggle does when activated.
type Action int

const (
	// ActionPin moves the task to the pinned view.
	ActionPin Action = iota

	// ActionUnpin moves the task back to the unpinned view.
	ActionUnpin
)

func (a Action) String() string {
	switch a {
	case ActionPin:
		return "pin"
	case ActionUnpin:
		return "unpin"
	default:
		return "unknown"
	}
}

// Toggle is the per-row pin control.
type Toggle struct {
	Label  string
	Action Action
}

// Row is a single rendered task line.
type Row struct {
	TaskID string
	Name   string

	// Toggle is nil for plain rows (live filter results).
	Toggle *Toggle
}

// Region is a container whose contents the manager replaces on every render.
type Region interface {
	// Clear removes all rows and any placeholder.
	Clear()

	// Append adds a row after the existing ones.
	Append(row Row)

	// SetPlaceholder replaces the contents with a single placeholder line.
	SetPlaceholder(text string)
}

// Surface is the presentation collaborator of the manager.
type Surface interface {
	Input() string
	SetInput(value string)

	Error() string
	SetError(message string)

	Pinned() Region
	Unpinned() Region
}
