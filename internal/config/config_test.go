package config_test

import (
	"strings"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/config"
	"github.com/swipekbd/swipekbd/internal/model"
)

const sampleLayout = `
left:
  - - - {key: KEY_A, mods: [shift], n: {key: KEY_1}, e: arrow, w: delete, width: 1.5, label: "A"}
      - {key: KEY_S, s: {layer: {side: right, index: 1}}}
      - {key: KEY_D, w: {modified: ctrl}}
      - {key: KEY_F, n: {modkey: {key: KEY_F, mods: [ctrl, shift]}}}
    - - {pointer: true}
      - {cmd: foot, args: ["-e", "vim"], label: "term"}
      - {button: middle}
      - {key: KEY_SPACE, s: hide}
right:
  - - - {key: KEY_J, n: scroll, e: select}
  - - - {key: KEY_ENTER}
settings:
  hold-delay-ms: 250
  repeat-interval-ms: 50
  swipe-distance: 8
  swipe-increment: 4
  scroll-step: 20
  delete-mode: select
`

func TestLoadSampleLayout(t *testing.T) {
	layout, err := config.Load([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("cannot load sample layout: %v", err)
	}

	t.Run("mouse layer appended on the left", func(t *testing.T) {
		if len(layout.Left) != 2 {
			t.Fatalf("%d left layers, expected declared 1 plus mouse layer", len(layout.Left))
		}
		if layout.MouseLayerIndex() != 1 {
			t.Errorf("mouse layer index %d, expected 1", layout.MouseLayerIndex())
		}
	})

	t.Run("basic key fields", func(t *testing.T) {
		key, ok := layout.Left[0].KeyAt(0, 0).(*model.BasicKey)
		if !ok {
			t.Fatal("key (0,0) is not a basic key")
		}
		if key.Code != evdev.KEY_A {
			t.Errorf("code %d, expected KEY_A", key.Code)
		}
		if len(key.Mods) != 1 || key.Mods[0] != model.ModShift {
			t.Errorf("mods %v, expected [shift]", key.Mods)
		}
		if key.Width() != 1.5 {
			t.Errorf("width %f, expected 1.5", key.Width())
		}
		if key.Label() != "A" {
			t.Errorf("label %q, expected A", key.Label())
		}
		if _, ok := key.North.(model.KeySwipe); !ok {
			t.Errorf("north action %T, expected key swipe", key.North)
		}
		if _, ok := key.East.(model.ArrowSwipe); !ok {
			t.Errorf("east action %T, expected arrow swipe", key.East)
		}
		if _, ok := key.West.(model.DeleteSwipe); !ok {
			t.Errorf("west action %T, expected delete swipe", key.West)
		}
		if key.South != nil {
			t.Errorf("south action %T, expected none", key.South)
		}
	})

	t.Run("swipe action forms", func(t *testing.T) {
		sKey := layout.Left[0].KeyAt(0, 1).(*model.BasicKey)
		ref, ok := sKey.South.(model.LayerHoldSwipe)
		if !ok {
			t.Fatalf("south action %T, expected layer hold", sKey.South)
		}
		if ref.Side != model.SideRight || ref.Index != 1 {
			t.Errorf("layer reference %s/%d, expected right/1", ref.Side, ref.Index)
		}

		dKey := layout.Left[0].KeyAt(0, 2).(*model.BasicKey)
		modified, ok := dKey.West.(model.ModifiedSwipe)
		if !ok || modified.Mod != model.ModCtrl {
			t.Errorf("west action %v, expected modified ctrl", dKey.West)
		}

		fKey := layout.Left[0].KeyAt(0, 3).(*model.BasicKey)
		modkey, ok := fKey.North.(model.ModKeySwipe)
		if !ok {
			t.Fatalf("north action %T, expected modkey swipe", fKey.North)
		}
		if modkey.Code != evdev.KEY_F || len(modkey.Mods) != 2 {
			t.Errorf("modkey %v, expected ctrl+shift+KEY_F", modkey)
		}
	})

	t.Run("special key kinds", func(t *testing.T) {
		if _, ok := layout.Left[0].KeyAt(1, 0).(*model.PointerKey); !ok {
			t.Error("key (1,0) is not a pointer key")
		}
		cmd, ok := layout.Left[0].KeyAt(1, 1).(*model.CommandKey)
		if !ok {
			t.Fatal("key (1,1) is not a command key")
		}
		if cmd.Cmd != "foot" || len(cmd.Args) != 2 || cmd.Label() != "term" {
			t.Errorf("command key %+v wrong", cmd)
		}
		btn, ok := layout.Left[0].KeyAt(1, 2).(*model.PointerButtonKey)
		if !ok || btn.Button != model.ButtonMiddle {
			t.Error("key (1,2) is not the middle pointer button")
		}
	})

	t.Run("settings", func(t *testing.T) {
		s := layout.Settings
		if s.HoldDelay != 250*time.Millisecond {
			t.Errorf("hold delay %s, expected 250ms", s.HoldDelay)
		}
		if s.RepeatInterval != 50*time.Millisecond {
			t.Errorf("repeat interval %s, expected 50ms", s.RepeatInterval)
		}
		if s.SwipeDistance != 8 || s.SwipeIncrement != 4 {
			t.Errorf("swipe thresholds %f/%f, expected 8/4", s.SwipeDistance, s.SwipeIncrement)
		}
		if s.ScrollStep != 20 {
			t.Errorf("scroll step %d, expected 20", s.ScrollStep)
		}
		if s.DeleteMode != model.DeleteSelect {
			t.Errorf("delete mode %s, expected select", s.DeleteMode)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	layout, err := config.Load([]byte("left: [[[{key: KEY_A}]]]\nright: [[[{key: KEY_J}]]]\n"))
	if err != nil {
		t.Fatalf("cannot load minimal layout: %v", err)
	}
	if layout.Settings != model.DefaultSettings() {
		t.Errorf("settings %+v, expected defaults", layout.Settings)
	}
}

func TestDefaultLayoutIsValid(t *testing.T) {
	layout, err := config.Default()
	if err != nil {
		t.Fatalf("embedded default layout does not load: %v", err)
	}
	if len(layout.Left) < 2 || len(layout.Right) < 1 {
		t.Errorf("default layout has %d/%d layers", len(layout.Left), len(layout.Right))
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			"unknown key code",
			"left: [[[{key: KEY_BOGUS}]]]\nright: [[[{key: KEY_J}]]]",
			"unknown key code",
		},
		{
			"multiple key kinds",
			"left: [[[{key: KEY_A, pointer: true}]]]\nright: [[[{key: KEY_J}]]]",
			"exactly one",
		},
		{
			"unknown swipe shorthand",
			"left: [[[{key: KEY_A, n: zoom}]]]\nright: [[[{key: KEY_J}]]]",
			"unknown swipe action",
		},
		{
			"unknown modifier",
			"left: [[[{key: KEY_A, mods: [hyper]}]]]\nright: [[[{key: KEY_J}]]]",
			"unknown modifier",
		},
		{
			"layer reference out of range",
			"left: [[[{key: KEY_A, n: {layer: {side: right, index: 3}}}]]]\nright: [[[{key: KEY_J}]]]",
			"out of range",
		},
		{
			"empty side",
			"right: [[[{key: KEY_J}]]]",
			"no left layers",
		},
		{
			"bad delete mode",
			"left: [[[{key: KEY_A}]]]\nright: [[[{key: KEY_J}]]]\nsettings: {delete-mode: maybe}",
			"delete-mode",
		},
		{
			"non-positive threshold",
			"left: [[[{key: KEY_A}]]]\nright: [[[{key: KEY_J}]]]\nsettings: {swipe-distance: 0}",
			"must be positive",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load([]byte(tc.yaml))
			if err == nil {
				t.Fatal("invalid layout loaded without error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}
