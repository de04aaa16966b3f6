package keycode_test

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/keycode"
)

func TestFromName(t *testing.T) {
	code, ok := keycode.FromName("KEY_A")
	if !ok || code != evdev.KEY_A {
		t.Errorf("KEY_A resolved to (%d, %t)", code, ok)
	}
	if _, ok := keycode.FromName("KEY_BOGUS"); ok {
		t.Error("unknown name resolved")
	}
	if _, ok := keycode.FromName("a"); ok {
		t.Error("bare letter resolved, names require the KEY_ prefix")
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, code := range keycode.All() {
		name := keycode.Name(code)
		if name == "" {
			t.Errorf("code %d has no name", code)
			continue
		}
		back, ok := keycode.FromName(name)
		if !ok || back != code {
			t.Errorf("name %s resolves to %d, expected %d", name, back, code)
		}
	}
	if keycode.Name(evdev.KEY_RESERVED) != "" {
		t.Error("unsupported code has a name")
	}
}

func TestClassification(t *testing.T) {
	for _, code := range []keycode.Code{
		evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTCTRL, evdev.KEY_LEFTALT, evdev.KEY_RIGHTMETA,
	} {
		if !keycode.IsModifier(code) {
			t.Errorf("%s not classified as modifier", keycode.Name(code))
		}
	}
	if keycode.IsModifier(evdev.KEY_A) {
		t.Error("KEY_A classified as modifier")
	}
	if !keycode.IsLock(evdev.KEY_CAPSLOCK) {
		t.Error("KEY_CAPSLOCK not classified as lock")
	}
	if keycode.IsLock(evdev.KEY_LEFTSHIFT) {
		t.Error("KEY_LEFTSHIFT classified as lock")
	}
}

func TestGlyph(t *testing.T) {
	for _, tc := range []struct {
		code keycode.Code
		want string
	}{
		{evdev.KEY_A, "a"},
		{evdev.KEY_F5, "f5"},
		{evdev.KEY_BACKSPACE, "⌫"},
		{evdev.KEY_SPACE, "␣"},
		{evdev.KEY_LEFTSHIFT, "⇧"},
		{evdev.KEY_RESERVED, "?"},
	} {
		if got := keycode.Glyph(tc.code); got != tc.want {
			t.Errorf("glyph for %d is %q, expected %q", tc.code, got, tc.want)
		}
	}
}
