package gesture

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swipekbd/swipekbd/internal/model"
)

// Phase is the classification state of a live touch.
//
// A touch begins in PhaseDown. It resolves to a tap (release before the hold
// delay and within the swipe distance), to hold-repeat (hold delay expires
// first), or to a swipe (distance exceeded first). A swiping touch that rests
// past the hold delay fires its hold activation once; continued movement
// drives drag steps. Release and cancellation destroy the touch.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseHolding
	PhaseSwiping
	PhaseSwipeHold
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseHolding:
		return "holding"
	case PhaseSwiping:
		return "swiping"
	case PhaseSwipeHold:
		return "swipe-hold"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Touch is the transient state of one touch contact, owned by the Tracker
// from press to release or cancellation.
type Touch struct {
	ID        int64
	Origin    Pos
	Last      Pos
	PressedAt time.Time
	Phase     Phase

	// Dir is the swipe direction, fixed at the moment the swipe distance is
	// first exceeded. Further movement never reclassifies it.
	Dir model.Direction

	// lastSample is the position of the last emitted drag step.
	lastSample Pos

	// holdFired records that the swipe-hold activation has fired; it must not
	// fire twice.
	holdFired bool

	timer    Timer
	timerGen uint64
}

// Handler receives classified gesture phases. All calls happen synchronously
// on the goroutine driving the Tracker.
type Handler interface {
	// Tap fires when a touch is released before the hold delay without
	// exceeding the swipe distance.
	Tap(t *Touch)

	// HoldRepeat fires when the hold delay expires on a resting touch, and
	// again every repeat interval until release.
	HoldRepeat(t *Touch)

	// Move reports every raw movement with its delta; pointer-mode keys
	// consume this independent of swipe classification.
	Move(t *Touch, dx, dy float64)

	// SwipeStart fires once when the swipe direction is classified.
	SwipeStart(t *Touch)

	// SwipeHold fires at most once, when a swiping touch has rested past the
	// hold delay.
	SwipeHold(t *Touch)

	// SwipeDrag fires for every whole swipe increment of continued movement,
	// with the delta since the previous step.
	SwipeDrag(t *Touch, dx, dy float64)

	// SwipeRelease fires on release of any touch that reached the swiping
	// phases.
	SwipeRelease(t *Touch)

	// Released fires on every normal release, after any terminal action, for
	// cleanup keyed to the touch.
	Released(t *Touch)

	// Cancelled fires when the windowing layer cancels a touch. No terminal
	// action precedes it; handlers perform the same cleanup as for Released.
	Cancelled(t *Touch)
}

// Config are the Tracker's timing and distance thresholds.
type Config struct {
	HoldDelay      time.Duration
	RepeatInterval time.Duration
	SwipeDistance  float64
	SwipeIncrement float64
}

// TrackerConfig derives the Tracker thresholds from layout settings.
func TrackerConfig(s model.Settings) Config {
	return Config{
		HoldDelay:      s.HoldDelay,
		RepeatInterval: s.RepeatInterval,
		SwipeDistance:  s.SwipeDistance,
		SwipeIncrement: s.SwipeIncrement,
	}
}

// Tracker owns the state machines of all live touches, keyed by touch id.
// At most one Touch exists per id; an id is reused only after its prior touch
// was destroyed. All methods must be called from a single goroutine.
type Tracker struct {
	cfg     Config
	sched   Scheduler
	handler Handler
	touches map[int64]*Touch
}

// NewTracker returns a Tracker reporting to the given handler.
func NewTracker(cfg Config, sched Scheduler, handler Handler) *Tracker {
	return &Tracker{
		cfg:     cfg,
		sched:   sched,
		handler: handler,
		touches: make(map[int64]*Touch),
	}
}

// Active reports whether a touch with the given id is being tracked.
func (tr *Tracker) Active(id int64) bool {
	_, ok := tr.touches[id]
	return ok
}

// Down begins tracking a touch. A Down for an id that is already live is
// ignored; the windowing layer must release or cancel it first.
func (tr *Tracker) Down(id int64, pos Pos, at time.Time) {
	if _, ok := tr.touches[id]; ok {
		log.Warn().Int64("touch", id).Msg("duplicate down for live touch id; ignoring")
		return
	}
	t := &Touch{
		ID:        id,
		Origin:    pos,
		Last:      pos,
		PressedAt: at,
		Phase:     PhaseDown,
	}
	tr.touches[id] = t
	tr.armTimer(t, tr.cfg.HoldDelay)
	log.Debug().Int64("touch", id).Msg("touch down")
}

// Move updates a touch's position, classifying the swipe direction when the
// swipe distance is first exceeded and emitting drag steps afterwards.
// Moves for unknown ids are ignored.
func (tr *Tracker) Move(id int64, pos Pos) {
	t, ok := tr.touches[id]
	if !ok {
		return
	}

	dx := pos.X - t.Last.X
	dy := pos.Y - t.Last.Y
	t.Last = pos
	tr.handler.Move(t, dx, dy)

	switch t.Phase {
	case PhaseDown:
		if t.Origin.Dist(pos) >= tr.cfg.SwipeDistance {
			t.Dir = Classify(pos.X-t.Origin.X, pos.Y-t.Origin.Y)
			t.Phase = PhaseSwiping
			t.lastSample = pos
			tr.armTimer(t, tr.cfg.HoldDelay)
			log.Debug().Int64("touch", id).Stringer("dir", t.Dir).Msg("swipe classified")
			tr.handler.SwipeStart(t)
		}

	case PhaseSwiping, PhaseSwipeHold, PhaseDragging:
		if t.lastSample.Dist(pos) >= tr.cfg.SwipeIncrement {
			sdx := pos.X - t.lastSample.X
			sdy := pos.Y - t.lastSample.Y
			t.lastSample = pos
			t.Phase = PhaseDragging
			// A resting swipe measures its hold from the last movement.
			if !t.holdFired {
				tr.armTimer(t, tr.cfg.HoldDelay)
			}
			tr.handler.SwipeDrag(t, sdx, sdy)
		}
	}
}

// Up releases a touch: the terminal action for its phase is dispatched, the
// pending timer is cancelled, and the touch is destroyed. Ups for unknown
// ids are ignored.
func (tr *Tracker) Up(id int64, pos Pos) {
	t, ok := tr.touches[id]
	if !ok {
		return
	}
	tr.stopTimer(t)
	t.Last = pos

	switch t.Phase {
	case PhaseDown:
		log.Debug().Int64("touch", id).Msg("tap")
		tr.handler.Tap(t)
	case PhaseHolding:
		// Repeats already fired; nothing terminal.
	case PhaseSwiping, PhaseSwipeHold, PhaseDragging:
		log.Debug().Int64("touch", id).Stringer("dir", t.Dir).Msg("swipe release")
		tr.handler.SwipeRelease(t)
	}

	delete(tr.touches, id)
	tr.handler.Released(t)
}

// Cancel destroys a touch without dispatching its terminal action. The
// handler still receives Cancelled for cleanup. Unknown ids are ignored.
func (tr *Tracker) Cancel(id int64) {
	t, ok := tr.touches[id]
	if !ok {
		return
	}
	tr.stopTimer(t)
	delete(tr.touches, id)
	log.Debug().Int64("touch", id).Msg("touch cancelled")
	tr.handler.Cancelled(t)
}

// armTimer installs the touch's single outstanding timer, superseding and
// cancelling any previous one.
func (tr *Tracker) armTimer(t *Touch, d time.Duration) {
	tr.stopTimer(t)
	t.timerGen++
	gen := t.timerGen
	id := t.ID
	t.timer = tr.sched.AfterFunc(d, func() {
		tr.expire(id, gen)
	})
}

func (tr *Tracker) stopTimer(t *Touch) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// expire handles a hold-timer expiry. Stale expirations (superseded timers,
// or timers whose touch has been destroyed) are dropped by the generation
// check.
func (tr *Tracker) expire(id int64, gen uint64) {
	t, ok := tr.touches[id]
	if !ok || t.timerGen != gen {
		return
	}

	switch t.Phase {
	case PhaseDown:
		t.Phase = PhaseHolding
		log.Debug().Int64("touch", id).Msg("hold")
		tr.handler.HoldRepeat(t)
		tr.armTimer(t, tr.cfg.RepeatInterval)

	case PhaseHolding:
		tr.handler.HoldRepeat(t)
		tr.armTimer(t, tr.cfg.RepeatInterval)

	case PhaseSwiping, PhaseDragging:
		if !t.holdFired {
			t.holdFired = true
			t.Phase = PhaseSwipeHold
			log.Debug().Int64("touch", id).Stringer("dir", t.Dir).Msg("swipe hold")
			tr.handler.SwipeHold(t)
		}
	}
}
