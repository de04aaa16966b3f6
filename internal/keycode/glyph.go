package keycode

import (
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

// glyphs holds display overrides for keys whose default caps should not be
// their bare name suffix.
var glyphs = map[Code]string{
	evdev.KEY_MINUS:      "-",
	evdev.KEY_EQUAL:      "=",
	evdev.KEY_BACKSPACE:  "⌫",
	evdev.KEY_TAB:        "⇥",
	evdev.KEY_LEFTBRACE:  "[",
	evdev.KEY_RIGHTBRACE: "]",
	evdev.KEY_ENTER:      "⏎",
	evdev.KEY_SEMICOLON:  ";",
	evdev.KEY_APOSTROPHE: "'",
	evdev.KEY_GRAVE:      "`",
	evdev.KEY_BACKSLASH:  "\\",
	evdev.KEY_COMMA:      ",",
	evdev.KEY_DOT:        ".",
	evdev.KEY_SLASH:      "/",
	evdev.KEY_SPACE:      "␣",
	evdev.KEY_LEFTSHIFT:  "⇧",
	evdev.KEY_RIGHTSHIFT: "⇧",
	evdev.KEY_LEFTCTRL:   "ctl",
	evdev.KEY_RIGHTCTRL:  "ctl",
	evdev.KEY_LEFTALT:    "alt",
	evdev.KEY_RIGHTALT:   "alt",
	evdev.KEY_LEFTMETA:   "❖",
	evdev.KEY_RIGHTMETA:  "❖",
	evdev.KEY_CAPSLOCK:   "⇪",
	evdev.KEY_ESC:        "esc",
	evdev.KEY_UP:         "↑",
	evdev.KEY_DOWN:       "↓",
	evdev.KEY_LEFT:       "←",
	evdev.KEY_RIGHT:      "→",
	evdev.KEY_HOME:       "⇱",
	evdev.KEY_END:        "⇲",
	evdev.KEY_PAGEUP:     "⇞",
	evdev.KEY_PAGEDOWN:   "⇟",
	evdev.KEY_DELETE:     "⌦",
	evdev.KEY_INSERT:     "ins",
}

// Glyph returns a short display string for the key: an explicit override if
// one exists, otherwise the lowercased name suffix ("KEY_A" becomes "a").
func Glyph(code Code) string {
	if g, ok := glyphs[code]; ok {
		return g
	}
	name := Name(code)
	if name == "" {
		return "?"
	}
	return strings.ToLower(strings.TrimPrefix(name, "KEY_"))
}
