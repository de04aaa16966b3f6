package emit

import (
	"github.com/rs/zerolog/log"

	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/model"
)

// LogKeyboard is a Keyboard that only logs, for dry runs on systems without
// uinput access.
type LogKeyboard struct{}

func (LogKeyboard) Press(code keycode.Code) error {
	log.Info().Str("key", keycode.Name(code)).Msg("press")
	return nil
}

func (LogKeyboard) Release(code keycode.Code) error {
	log.Info().Str("key", keycode.Name(code)).Msg("release")
	return nil
}

// LogPointer is the dry-run counterpart for pointer events.
type LogPointer struct{}

func (LogPointer) Move(dx, dy int) error {
	log.Info().Int("dx", dx).Int("dy", dy).Msg("pointer move")
	return nil
}

func (LogPointer) Button(btn model.PointerButton, down bool) error {
	log.Info().Stringer("button", btn).Bool("down", down).Msg("pointer button")
	return nil
}

func (LogPointer) Scroll(steps int) error {
	log.Info().Int("steps", steps).Msg("pointer scroll")
	return nil
}
