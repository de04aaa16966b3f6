// Package textedit turns swipe drag steps into cursor movement, selection,
// and deletion key sequences.
package textedit

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/emit"
	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/model"
)

// Kind selects what a drag step does to the focused text field.
type Kind int

const (
	// KindArrow moves the cursor one arrow press per step.
	KindArrow Kind = iota
	// KindSelect extends the selection: arrow presses with shift held.
	KindSelect
	// KindDelete deletes text, per the configured delete mode.
	KindDelete
)

// Session is one swipe gesture editing text. It lives from classification to
// release; drag steps arrive through Step and the gesture ends with End.
type Session struct {
	kbd  emit.Keyboard
	kind Kind
	dir  model.Direction
	mode model.DeleteMode

	stepped bool
}

// NewSession begins an editing gesture in the given fixed direction.
func NewSession(kbd emit.Keyboard, kind Kind, dir model.Direction, mode model.DeleteMode) *Session {
	return &Session{kbd: kbd, kind: kind, dir: dir, mode: mode}
}

// Step applies n whole drag steps. Positive n is movement along the swipe
// direction; negative n is movement back toward the origin, which reverses
// cursor and selection steps. Deletion ignores backward steps.
func (s *Session) Step(n int) error {
	if n == 0 {
		return nil
	}

	switch s.kind {
	case KindArrow:
		return s.arrows(n, nil)

	case KindSelect:
		return s.arrows(n, []keycode.Code{evdev.KEY_LEFTSHIFT})

	case KindDelete:
		if s.mode == model.DeleteSelect {
			s.stepped = true
			return s.arrows(n, []keycode.Code{evdev.KEY_LEFTSHIFT})
		}
		if n < 0 {
			return nil
		}
		code := keycode.Code(evdev.KEY_DELETE)
		if s.dir == model.DirWest || s.dir == model.DirNorth {
			code = evdev.KEY_BACKSPACE
		}
		for i := 0; i < n; i++ {
			if err := emit.Tap(s.kbd, nil, code); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// End finishes the gesture. In select delete mode this commits the deletion
// by pressing backspace over the selection, if any steps were made.
func (s *Session) End() error {
	if s.kind == KindDelete && s.mode == model.DeleteSelect && s.stepped {
		return emit.Tap(s.kbd, nil, evdev.KEY_BACKSPACE)
	}
	return nil
}

// arrows presses the arrow key matching the step sign |n| times, with the
// given modifier codes held for each press.
func (s *Session) arrows(n int, mods []keycode.Code) error {
	dir := s.dir
	if n < 0 {
		dir = dir.Opposite()
		n = -n
	}
	for i := 0; i < n; i++ {
		if err := emit.Tap(s.kbd, mods, dir.ArrowKey()); err != nil {
			return err
		}
	}
	return nil
}
