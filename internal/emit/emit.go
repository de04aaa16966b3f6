// Package emit abstracts the synthetic input devices the keyboard drives:
// a key event sink and a pointer event sink.
package emit

import (
	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/model"
)

// Keyboard emits synthetic key events.
type Keyboard interface {
	Press(code keycode.Code) error
	Release(code keycode.Code) error
}

// Pointer emits synthetic pointer events. Move is relative; Scroll is in
// wheel detents, positive scrolling down.
type Pointer interface {
	Move(dx, dy int) error
	Button(btn model.PointerButton, down bool) error
	Scroll(steps int) error
}

// Tap emits a complete keypress: the modifiers go down first, then the key
// is pressed and released, then the modifiers come back up in reverse order.
func Tap(kbd Keyboard, mods []keycode.Code, code keycode.Code) error {
	for _, m := range mods {
		if err := kbd.Press(m); err != nil {
			return err
		}
	}
	if err := kbd.Press(code); err != nil {
		return err
	}
	if err := kbd.Release(code); err != nil {
		return err
	}
	for i := len(mods) - 1; i >= 0; i-- {
		if err := kbd.Release(mods[i]); err != nil {
			return err
		}
	}
	return nil
}
