package manager

import "time"

// Scheduler runs deferred callbacks. AfterFunc schedules fn to run once after
// d and returns a function that cancels it if it has not run yet.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func())
}

// TimerScheduler runs callbacks on their own goroutine via time.AfterFunc.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
