package model_test

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/model"
)

func TestDirection(t *testing.T) {
	for _, tc := range []struct {
		dir        model.Direction
		opposite   model.Direction
		arrowKey   evdev.EvCode
		horizontal bool
	}{
		{model.DirNorth, model.DirSouth, evdev.KEY_UP, false},
		{model.DirEast, model.DirWest, evdev.KEY_RIGHT, true},
		{model.DirSouth, model.DirNorth, evdev.KEY_DOWN, false},
		{model.DirWest, model.DirEast, evdev.KEY_LEFT, true},
	} {
		if got := tc.dir.Opposite(); got != tc.opposite {
			t.Errorf("%s opposite is %s, expected %s", tc.dir, got, tc.opposite)
		}
		if got := tc.dir.ArrowKey(); got != tc.arrowKey {
			t.Errorf("%s arrow key is %d, expected %d", tc.dir, got, tc.arrowKey)
		}
		if got := tc.dir.Horizontal(); got != tc.horizontal {
			t.Errorf("%s horizontal is %t", tc.dir, got)
		}
	}
	if model.DirNone.Opposite() != model.DirNone {
		t.Error("none has an opposite")
	}
}

func TestModifierFromCode(t *testing.T) {
	for _, tc := range []struct {
		code evdev.EvCode
		mod  model.Modifier
	}{
		{evdev.KEY_LEFTSHIFT, model.ModShift},
		{evdev.KEY_RIGHTSHIFT, model.ModShift},
		{evdev.KEY_LEFTCTRL, model.ModCtrl},
		{evdev.KEY_RIGHTALT, model.ModAlt},
		{evdev.KEY_LEFTMETA, model.ModMeta},
	} {
		mod, ok := model.ModifierFromCode(tc.code)
		if !ok || mod != tc.mod {
			t.Errorf("code %d resolved to (%s, %t), expected %s", tc.code, mod, ok, tc.mod)
		}
	}
	if _, ok := model.ModifierFromCode(evdev.KEY_A); ok {
		t.Error("KEY_A resolved to a modifier")
	}
}

func TestModifierRoundTrip(t *testing.T) {
	for _, mod := range []model.Modifier{model.ModShift, model.ModCtrl, model.ModAlt, model.ModMeta} {
		byName, ok := model.ModifierFromName(mod.String())
		if !ok || byName != mod {
			t.Errorf("name %q resolves to (%s, %t)", mod.String(), byName, ok)
		}
		byCode, ok := model.ModifierFromCode(mod.Code())
		if !ok || byCode != mod {
			t.Errorf("code of %s resolves to (%s, %t)", mod, byCode, ok)
		}
	}
	if super, ok := model.ModifierFromName("super"); !ok || super != model.ModMeta {
		t.Error("super is not accepted as an alias for meta")
	}
}

func TestBasicKey(t *testing.T) {
	key := &model.BasicKey{
		Code:  evdev.KEY_A,
		North: model.KeySwipe{Code: evdev.KEY_1},
		West:  model.DeleteSwipe{},
	}

	t.Run("action lookup", func(t *testing.T) {
		if _, ok := key.ActionFor(model.DirNorth).(model.KeySwipe); !ok {
			t.Error("north action missing")
		}
		if _, ok := key.ActionFor(model.DirWest).(model.DeleteSwipe); !ok {
			t.Error("west action missing")
		}
		if key.ActionFor(model.DirEast) != nil {
			t.Error("undeclared direction has an action")
		}
		if key.ActionFor(model.DirNone) != nil {
			t.Error("none direction has an action")
		}
	})

	t.Run("type classification", func(t *testing.T) {
		if key.Type() != model.KeyTypeNormal {
			t.Errorf("KEY_A type %d, expected normal", key.Type())
		}
		shift := &model.BasicKey{Code: evdev.KEY_LEFTSHIFT}
		if shift.Type() != model.KeyTypeModifier {
			t.Errorf("KEY_LEFTSHIFT type %d, expected modifier", shift.Type())
		}
		caps := &model.BasicKey{Code: evdev.KEY_CAPSLOCK}
		if caps.Type() != model.KeyTypeLock {
			t.Errorf("KEY_CAPSLOCK type %d, expected lock", caps.Type())
		}
	})

	t.Run("label and width fallbacks", func(t *testing.T) {
		if key.Label() != "a" {
			t.Errorf("label %q, expected glyph fallback", key.Label())
		}
		if key.Width() != 1 {
			t.Errorf("width %f, expected default 1", key.Width())
		}
		wide := &model.BasicKey{Code: evdev.KEY_SPACE, WidthUnits: 2, LabelText: "go"}
		if wide.Label() != "go" || wide.Width() != 2 {
			t.Errorf("explicit label/width not honored: %q/%f", wide.Label(), wide.Width())
		}
	})
}

func TestSpecialKeyLabels(t *testing.T) {
	if (&model.PointerKey{}).Label() == "" {
		t.Error("pointer key has no default label")
	}
	if (&model.CommandKey{Cmd: "foot"}).Label() != "foot" {
		t.Error("command key does not fall back to its command")
	}
	btn := &model.PointerButtonKey{Button: model.ButtonRight}
	if btn.Label() == "" {
		t.Error("pointer button key has no default label")
	}
	if btn.Button.String() != "right" {
		t.Errorf("button name %q, expected right", btn.Button)
	}
}

func TestLayout(t *testing.T) {
	layer := model.Layer{Rows: []model.Row{
		{&model.BasicKey{Code: evdev.KEY_A}, &model.BasicKey{Code: evdev.KEY_S}},
		{&model.BasicKey{Code: evdev.KEY_Z}},
	}}
	layout := &model.Layout{
		Left:  []model.Layer{layer, {}},
		Right: []model.Layer{layer},
	}

	if len(layout.Layers(model.SideLeft)) != 2 || len(layout.Layers(model.SideRight)) != 1 {
		t.Error("side lookup returns the wrong stacks")
	}
	if layout.MouseLayerIndex() != 1 {
		t.Errorf("mouse layer index %d, expected last left", layout.MouseLayerIndex())
	}

	if key := layer.KeyAt(0, 1); key.(*model.BasicKey).Code != evdev.KEY_S {
		t.Error("in-range lookup returns the wrong key")
	}
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {1, 1}} {
		if layer.KeyAt(pos[0], pos[1]) != nil {
			t.Errorf("out-of-range lookup (%d,%d) returned a key", pos[0], pos[1])
		}
	}
}
