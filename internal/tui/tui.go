// Package tui is the terminal frontend: it renders the keyboard with tcell
// and translates mouse press/drag/release sequences into the engine's touch
// stream (the terminal mouse is a single-touch surface).
package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/swipekbd/swipekbd/internal/control"
	"github.com/swipekbd/swipekbd/internal/gesture"
	"github.com/swipekbd/swipekbd/internal/model"
)

// Frontend runs the terminal UI loop. It implements control.Notifier; the
// engine calls back into it from the same goroutine the loop runs on, so no
// locking is needed on the render state.
type Frontend struct {
	screen *ScreenHandler
	pane   *KeyboardPane
	engine *control.Engine

	// loopFns delivers scheduled timer callbacks into the loop.
	loopFns chan func()

	hidden bool
	state  State

	touching bool
	touchID  int64
}

// NewFrontend assembles the frontend over an initialized screen. The engine
// is attached afterwards with SetEngine since it needs the frontend as its
// notifier.
func NewFrontend(screen *ScreenHandler, pane *KeyboardPane, loopFns chan func()) *Frontend {
	return &Frontend{
		screen:  screen,
		pane:    pane,
		loopFns: loopFns,
	}
}

// SetEngine attaches the engine driving this frontend.
func (f *Frontend) SetEngine(e *control.Engine) {
	f.engine = e
	f.state.LeftLayer = e.Layer(model.SideLeft)
	f.state.RightLayer = e.Layer(model.SideRight)
}

// LayerChanged implements control.Notifier.
func (f *Frontend) LayerChanged(side model.Side, index int) {
	if side == model.SideLeft {
		f.state.LeftLayer = index
	} else {
		f.state.RightLayer = index
	}
}

// ModifiersChanged implements control.Notifier.
func (f *Frontend) ModifiersChanged(mods []model.Modifier) {
	f.state.Modifiers = mods
}

// HideKeyboard implements control.Notifier. The keyboard collapses to the
// trigger cell until that is tapped.
func (f *Frontend) HideKeyboard() {
	f.hidden = true
}

// Run blocks on the UI loop until the user quits.
func (f *Frontend) Run() {
	log.Info().Msg("keyboard TUI started")

	events := make(chan tcell.Event, 32)
	var wg sync.WaitGroup

	// Poll terminal events until the screen is finalized.
	wg.Add(1)
	go func() {
		defer wg.Done()
		pollable := f.screen.GetEventPollable()
		for {
			ev := pollable.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	f.render()
	for {
		select {
		case fn := <-f.loopFns:
			fn()
		case ev := <-events:
			if quit := f.handleEvent(ev); quit {
				f.screen.Fini()
				wg.Wait()
				return
			}
		}
		f.render()
	}
}

func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		f.screen.NeedsSync()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyEscape {
			return true
		}
	case *tcell.EventMouse:
		f.handleMouse(e)
	}
	return false
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if f.hidden {
		if pressed && f.pane.TriggerHit(f.screen, x, y) {
			f.hidden = false
		}
		return
	}

	pos := gesture.Pos{X: float64(x), Y: float64(y)}
	switch {
	case pressed && !f.touching:
		ref, ok := f.pane.HitTest(x, y)
		if !ok {
			return
		}
		f.touchID++
		f.touching = true
		f.state.Touched = ref
		f.state.HasTouched = true
		f.engine.HandleTouch(control.TouchEvent{
			ID:   f.touchID,
			Kind: control.TouchDown,
			Pos:  pos,
			Time: time.Now(),
			Key:  ref,
		})

	case pressed && f.touching:
		f.engine.HandleTouch(control.TouchEvent{
			ID:   f.touchID,
			Kind: control.TouchMove,
			Pos:  pos,
		})

	case !pressed && f.touching:
		f.engine.HandleTouch(control.TouchEvent{
			ID:   f.touchID,
			Kind: control.TouchUp,
			Pos:  pos,
		})
		f.touching = false
		f.state.HasTouched = false
	}
}

func (f *Frontend) render() {
	f.screen.Clear()
	if f.hidden {
		f.pane.DrawTrigger(f.screen)
	} else {
		f.pane.Draw(f.screen, f.state)
	}
	f.screen.Show()
}
