package model

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/keycode"
)

// Modifier is a modifier that can accompany an emitted key event.
type Modifier int

const (
	ModShift Modifier = iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "shift"
	case ModCtrl:
		return "ctrl"
	case ModAlt:
		return "alt"
	case ModMeta:
		return "meta"
	default:
		return "unknown"
	}
}

// Code returns the key code pressed to apply the modifier.
func (m Modifier) Code() keycode.Code {
	switch m {
	case ModShift:
		return evdev.KEY_LEFTSHIFT
	case ModCtrl:
		return evdev.KEY_LEFTCTRL
	case ModAlt:
		return evdev.KEY_LEFTALT
	case ModMeta:
		return evdev.KEY_LEFTMETA
	default:
		return evdev.KEY_RESERVED
	}
}

// ModifierFromCode resolves the modifier a modifier key code stands for.
func ModifierFromCode(code keycode.Code) (Modifier, bool) {
	switch code {
	case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
		return ModShift, true
	case evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL:
		return ModCtrl, true
	case evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT:
		return ModAlt, true
	case evdev.KEY_LEFTMETA, evdev.KEY_RIGHTMETA:
		return ModMeta, true
	default:
		return 0, false
	}
}

// ModifierFromName resolves a layout-file modifier name.
func ModifierFromName(name string) (Modifier, bool) {
	switch name {
	case "shift":
		return ModShift, true
	case "ctrl":
		return ModCtrl, true
	case "alt":
		return ModAlt, true
	case "meta", "super":
		return ModMeta, true
	default:
		return 0, false
	}
}
