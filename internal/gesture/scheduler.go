package gesture

import "time"

// Timer is a cancellable single-shot timer handle.
// *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler schedules single-shot callbacks. Callbacks must be delivered on
// the same goroutine that drives the Tracker; the production scheduler does
// this by posting the callback into the engine's run loop, tests fire
// callbacks manually.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
