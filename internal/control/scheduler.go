package control

import (
	"time"

	"github.com/swipekbd/swipekbd/internal/gesture"
)

// LoopScheduler schedules timer callbacks onto the engine's event loop so
// that gesture timers fire on the same goroutine as touch events.
type LoopScheduler struct {
	post chan<- func()
}

// NewLoopScheduler returns a scheduler delivering expired callbacks to the
// given channel. The loop draining the channel must invoke them.
func NewLoopScheduler(post chan<- func()) *LoopScheduler {
	return &LoopScheduler{post: post}
}

// AfterFunc schedules fn to be posted to the loop after d. Stopping the
// returned timer before expiry prevents the post.
func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) gesture.Timer {
	return time.AfterFunc(d, func() {
		s.post <- fn
	})
}
