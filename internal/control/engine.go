// Package control runs the keyboard: it feeds touch events through the
// gesture tracker and turns the classified gestures into key emissions,
// layer changes, pointer motion, and text edits.
package control

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/swipekbd/swipekbd/internal/emit"
	"github.com/swipekbd/swipekbd/internal/gesture"
	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/launch"
	"github.com/swipekbd/swipekbd/internal/model"
	"github.com/swipekbd/swipekbd/internal/pointer"
	"github.com/swipekbd/swipekbd/internal/textedit"
)

// KeyRef addresses a key position on one side. The layer is not part of the
// reference: the engine resolves it against the side's active layer at
// touch-down and pins the resolved key for the touch's lifetime.
type KeyRef struct {
	Side model.Side
	Row  int
	Col  int
}

// TouchKind is the type of a touch event from the frontend.
type TouchKind int

const (
	TouchDown TouchKind = iota
	TouchMove
	TouchUp
	TouchCancel
)

// TouchEvent is one touch event delivered by the frontend. Key is only
// meaningful for TouchDown; afterwards the touch is identified by ID alone.
type TouchEvent struct {
	ID   int64
	Kind TouchKind
	Pos  gesture.Pos
	Time time.Time
	Key  KeyRef
}

// Notifier receives state changes the frontend renders: the active layer per
// side, the pending modifier set, and the hide request.
type Notifier interface {
	LayerChanged(side model.Side, index int)
	ModifiersChanged(mods []model.Modifier)
	HideKeyboard()
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) LayerChanged(model.Side, int) {}

func (NopNotifier) ModifiersChanged([]model.Modifier) {}

func (NopNotifier) HideKeyboard() {}

// touchCtx is the engine's per-touch state, keyed alongside the tracker's
// touch by id.
type touchCtx struct {
	key    model.Key
	action model.SwipeAction

	// Drag step state, present for step-driven swipe actions.
	acc  gesture.StepAccumulator
	edit *textedit.Session

	// repeatMods caches the modifier codes captured at the first hold-repeat
	// so every repeat carries the same modifiers.
	repeatMods []keycode.Code
	repeating  bool

	btnHeld bool
}

// Engine owns all keyboard state. It is single-threaded: touch events and
// expired timer callbacks must both be delivered on the same goroutine.
type Engine struct {
	layout   *model.Layout
	kbd      emit.Keyboard
	ptr      *pointer.Controller
	launcher launch.Launcher
	notifier Notifier

	tracker *gesture.Tracker
	stacks  map[model.Side]*LayerStack
	mods    *ModifierTracker
	ctxs    map[int64]*touchCtx
}

// NewEngine assembles an engine over the given layout and output devices.
// Timer callbacks scheduled through sched must be run by the caller's loop.
func NewEngine(
	layout *model.Layout,
	sched gesture.Scheduler,
	kbd emit.Keyboard,
	ptrDev emit.Pointer,
	launcher launch.Launcher,
	notifier Notifier,
) *Engine {
	e := &Engine{
		layout:   layout,
		kbd:      kbd,
		ptr:      pointer.NewController(ptrDev),
		launcher: launcher,
		notifier: notifier,
		stacks: map[model.Side]*LayerStack{
			model.SideLeft:  NewLayerStack(len(layout.Left)),
			model.SideRight: NewLayerStack(len(layout.Right)),
		},
		mods: NewModifierTracker(),
		ctxs: make(map[int64]*touchCtx),
	}
	e.tracker = gesture.NewTracker(gesture.TrackerConfig(layout.Settings), sched, e)
	return e
}

// Layer returns the active layer index of a side.
func (e *Engine) Layer(side model.Side) int {
	return e.stacks[side].Current()
}

// Modifiers returns the pending modifiers.
func (e *Engine) Modifiers() []model.Modifier {
	return e.mods.Active()
}

// HandleTouch processes one frontend touch event.
func (e *Engine) HandleTouch(ev TouchEvent) {
	switch ev.Kind {
	case TouchDown:
		e.handleDown(ev)
	case TouchMove:
		e.tracker.Move(ev.ID, ev.Pos)
	case TouchUp:
		e.tracker.Up(ev.ID, ev.Pos)
	case TouchCancel:
		e.tracker.Cancel(ev.ID)
	}
}

func (e *Engine) handleDown(ev TouchEvent) {
	layers := e.layout.Layers(ev.Key.Side)
	idx := e.stacks[ev.Key.Side].Current()
	if idx >= len(layers) {
		log.Error().Int("layer", idx).Stringer("side", ev.Key.Side).
			Msg("active layer out of range")
		return
	}
	key := layers[idx].KeyAt(ev.Key.Row, ev.Key.Col)
	if key == nil {
		log.Debug().Int("row", ev.Key.Row).Int("col", ev.Key.Col).
			Msg("touch down outside any key")
		return
	}

	ctx := &touchCtx{key: key}
	e.ctxs[ev.ID] = ctx

	if _, ok := key.(*model.PointerKey); ok {
		e.ptr.Reset()
		// The mouse layer stays up for the other fingers while the pointer
		// key is held.
		stack := e.stacks[model.SideLeft]
		if stack.Push(e.layout.MouseLayerIndex(), ev.ID) {
			e.notifier.LayerChanged(model.SideLeft, stack.Current())
		}
	}

	e.tracker.Down(ev.ID, ev.Pos, ev.Time)
}

// Tap implements gesture.Handler.
func (e *Engine) Tap(t *gesture.Touch) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	switch key := ctx.key.(type) {
	case *model.BasicKey:
		switch key.Type() {
		case model.KeyTypeModifier:
			mod, ok := model.ModifierFromCode(key.Code)
			if !ok {
				return
			}
			// Sticky: the modifier goes down at the sink and stays down,
			// across any number of keys, until the key is tapped again.
			if e.mods.ToggleSticky(mod) {
				if err := e.kbd.Press(mod.Code()); err != nil {
					log.Error().Err(err).Stringer("mod", mod).Msg("cannot press sticky modifier")
				}
			} else {
				if err := e.kbd.Release(mod.Code()); err != nil {
					log.Error().Err(err).Stringer("mod", mod).Msg("cannot release sticky modifier")
				}
			}
			e.notifier.ModifiersChanged(e.mods.Active())
		case model.KeyTypeLock:
			if err := emit.Tap(e.kbd, nil, key.Code); err != nil {
				log.Error().Err(err).Msg("cannot emit lock key")
			}
		default:
			e.emitKey(key.Code, key.Mods)
		}
	case *model.PointerButtonKey:
		e.clickButton(key.Button)
	case *model.CommandKey:
		e.launcher.Launch(key.Cmd, key.Args)
	}
}

// HoldRepeat implements gesture.Handler.
func (e *Engine) HoldRepeat(t *gesture.Touch) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	switch key := ctx.key.(type) {
	case *model.BasicKey:
		if key.Type() != model.KeyTypeNormal {
			return
		}
		if !ctx.repeating {
			ctx.repeating = true
			ctx.repeatMods = e.consumeModCodes(key.Mods)
		}
		if err := emit.Tap(e.kbd, ctx.repeatMods, key.Code); err != nil {
			log.Error().Err(err).Msg("cannot emit repeated key")
		}
	case *model.PointerButtonKey:
		// Holding a button key keeps the button down for dragging.
		if !ctx.btnHeld {
			ctx.btnHeld = true
			if err := e.ptr.Button(key.Button, true); err != nil {
				log.Error().Err(err).Msg("cannot press pointer button")
			}
		}
	}
}

// Move implements gesture.Handler. Only pointer keys consume raw movement.
func (e *Engine) Move(t *gesture.Touch, dx, dy float64) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	if _, ok := ctx.key.(*model.PointerKey); !ok {
		return
	}
	if err := e.ptr.FreeMove(t.Origin, t.Last, dx, dy); err != nil {
		log.Error().Err(err).Msg("cannot move pointer")
	}
}

// SwipeStart implements gesture.Handler: the direction is fixed, so the
// swipe action resolves now. One-shot actions fire immediately; step and
// release actions set up their per-gesture state.
func (e *Engine) SwipeStart(t *gesture.Touch) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	key, ok := ctx.key.(*model.BasicKey)
	if !ok {
		return
	}
	act := key.ActionFor(t.Dir)
	if act == nil {
		return
	}
	ctx.action = act

	settings := e.layout.Settings
	switch a := act.(type) {
	case model.KeySwipe:
		e.emitKey(a.Code, nil)
	case model.ModKeySwipe:
		e.emitKey(a.Code, a.Mods)
	case model.ModifiedSwipe:
		e.mods.Request(a.Mod)
		e.notifier.ModifiersChanged(e.mods.Active())
	case model.CommandSwipe:
		e.launcher.Launch(a.Cmd, a.Args)
	case model.ArrowSwipe:
		ctx.acc = gesture.NewStepAccumulator(settings.SwipeIncrement)
		ctx.edit = textedit.NewSession(e.kbd, textedit.KindArrow, t.Dir, settings.DeleteMode)
	case model.SelectSwipe:
		ctx.acc = gesture.NewStepAccumulator(settings.SwipeIncrement)
		ctx.edit = textedit.NewSession(e.kbd, textedit.KindSelect, t.Dir, settings.DeleteMode)
	case model.DeleteSwipe:
		ctx.acc = gesture.NewStepAccumulator(settings.SwipeIncrement)
		ctx.edit = textedit.NewSession(e.kbd, textedit.KindDelete, t.Dir, settings.DeleteMode)
	case model.ScrollSwipe:
		ctx.acc = gesture.NewStepAccumulator(float64(settings.ScrollStep))
	case model.LayerHoldSwipe, model.HideSwipe:
		// Act on swipe-hold and release respectively.
	}
}

// SwipeHold implements gesture.Handler. Only layer references act here.
func (e *Engine) SwipeHold(t *gesture.Touch) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	if a, ok := ctx.action.(model.LayerHoldSwipe); ok {
		stack := e.stacks[a.Side]
		if stack.Push(a.Index, t.ID) {
			e.notifier.LayerChanged(a.Side, stack.Current())
		}
	}
}

// SwipeDrag implements gesture.Handler: whole steps along the fixed
// direction drive text edits or scrolling.
func (e *Engine) SwipeDrag(t *gesture.Touch, dx, dy float64) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	if ctx.edit == nil {
		if _, ok := ctx.action.(model.ScrollSwipe); !ok {
			return
		}
	}

	steps := ctx.acc.Add(alongDirection(t.Dir, dx, dy))
	if steps == 0 {
		return
	}

	if ctx.edit != nil {
		if err := ctx.edit.Step(steps); err != nil {
			log.Error().Err(err).Msg("cannot emit edit steps")
		}
		return
	}

	// Positive steps follow the swipe direction: south/east scroll down,
	// north/west scroll up.
	if t.Dir == model.DirNorth || t.Dir == model.DirWest {
		steps = -steps
	}
	if err := e.ptr.Scroll(steps); err != nil {
		log.Error().Err(err).Msg("cannot scroll")
	}
}

// SwipeRelease implements gesture.Handler: release-phase actions fire here.
func (e *Engine) SwipeRelease(t *gesture.Touch) {
	ctx := e.ctxs[t.ID]
	if ctx == nil {
		return
	}
	switch ctx.action.(type) {
	case model.ModifiedSwipe:
		if key, ok := ctx.key.(*model.BasicKey); ok {
			e.emitKey(key.Code, key.Mods)
		}
	case model.HideSwipe:
		e.notifier.HideKeyboard()
	}
	if ctx.edit != nil {
		if err := ctx.edit.End(); err != nil {
			log.Error().Err(err).Msg("cannot end edit gesture")
		}
	}
}

// Released implements gesture.Handler.
func (e *Engine) Released(t *gesture.Touch) {
	e.cleanup(t.ID)
}

// Cancelled implements gesture.Handler. The tracker has already suppressed
// the terminal action; only the cleanup shared with Released runs.
func (e *Engine) Cancelled(t *gesture.Touch) {
	e.cleanup(t.ID)
}

// cleanup releases everything a touch holds: a pressed pointer button, an
// unconsumed pending modifier, and any layer it pushed, on either side.
func (e *Engine) cleanup(id int64) {
	ctx := e.ctxs[id]
	if ctx == nil {
		return
	}
	delete(e.ctxs, id)

	if ctx.btnHeld {
		if key, ok := ctx.key.(*model.PointerButtonKey); ok {
			if err := e.ptr.Button(key.Button, false); err != nil {
				log.Error().Err(err).Msg("cannot release pointer button")
			}
		}
	}
	// A Modified swipe's pending modifier is consumed by the release
	// emission; if the gesture was cancelled instead, it is still pending
	// here and must not leak onto the next key.
	if a, ok := ctx.action.(model.ModifiedSwipe); ok {
		if e.mods.Withdraw(a.Mod) {
			e.notifier.ModifiersChanged(e.mods.Active())
		}
	}
	for _, side := range []model.Side{model.SideLeft, model.SideRight} {
		stack := e.stacks[side]
		if stack.Pop(id) {
			e.notifier.LayerChanged(side, stack.Current())
		}
	}
}

// emitKey emits a complete keypress, combining the key's own modifiers with
// the consumed pending ones.
func (e *Engine) emitKey(code keycode.Code, keyMods []model.Modifier) {
	mods := e.consumeModCodes(keyMods)
	if err := emit.Tap(e.kbd, mods, code); err != nil {
		log.Error().Err(err).Str("key", keycode.Name(code)).Msg("cannot emit key")
	}
}

// consumeModCodes merges a key's own modifiers with the pending one-shot
// modifiers, clearing the latter, and returns the deduplicated codes.
// Sticky modifiers are skipped: they are already down at the sink.
func (e *Engine) consumeModCodes(keyMods []model.Modifier) []keycode.Code {
	pending := e.mods.ConsumeAndClear()
	if len(pending) > 0 {
		e.notifier.ModifiersChanged(e.mods.Active())
	}

	var codes []keycode.Code
	seen := make(map[keycode.Code]bool)
	for _, mod := range append(append([]model.Modifier{}, keyMods...), pending...) {
		if e.mods.IsSticky(mod) {
			continue
		}
		c := mod.Code()
		if !seen[c] {
			seen[c] = true
			codes = append(codes, c)
		}
	}
	return codes
}

func (e *Engine) clickButton(btn model.PointerButton) {
	if err := e.ptr.Button(btn, true); err != nil {
		log.Error().Err(err).Msg("cannot press pointer button")
		return
	}
	if err := e.ptr.Button(btn, false); err != nil {
		log.Error().Err(err).Msg("cannot release pointer button")
	}
}

// alongDirection projects a delta onto the swipe direction. Positive values
// move along the swipe; negative values move back toward the origin.
func alongDirection(dir model.Direction, dx, dy float64) float64 {
	switch dir {
	case model.DirEast:
		return dx
	case model.DirWest:
		return -dx
	case model.DirSouth:
		return dy
	case model.DirNorth:
		return -dy
	default:
		return 0
	}
}
