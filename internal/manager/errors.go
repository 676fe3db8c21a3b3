package manager

import "errors"

// ErrEmptyName is returned when a task name is blank after trimming.
var ErrEmptyName = errors.New("task name cannot be empty")

// ValidationError reports input rejected before any state change.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
