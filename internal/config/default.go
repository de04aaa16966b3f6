package config

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/model"
)

// mouseLayer is the pointer control layer appended as the last left layer.
// It is forced active while a pointer key is held and is also reachable
// through a layer reference like any other layer.
func mouseLayer() model.Layer {
	return model.Layer{
		Rows: []model.Row{
			{
				&model.PointerButtonKey{Button: model.ButtonLeft},
				&model.PointerButtonKey{Button: model.ButtonMiddle},
				&model.PointerButtonKey{Button: model.ButtonRight},
			},
			{
				&model.BasicKey{
					Code:      evdev.KEY_LEFTSHIFT,
					LabelText: "⇧",
				},
				&model.BasicKey{
					Code:      evdev.KEY_DOWN,
					North:     model.ScrollSwipe{},
					South:     model.ScrollSwipe{},
					LabelText: "⇅",
				},
				&model.PointerKey{},
			},
		},
	}
}

// defaultLayoutYAML is the layout used when no file is given. It is parsed
// through the same loader as user layouts, so it doubles as a schema check.
const defaultLayoutYAML = `
left:
  - # base
    - - {key: KEY_Q, n: {key: KEY_1}}
      - {key: KEY_W, n: {key: KEY_2}}
      - {key: KEY_E, n: {key: KEY_3}}
      - {key: KEY_R, n: {key: KEY_4}}
      - {key: KEY_T, n: {key: KEY_5}}
    - - {key: KEY_A, w: {modified: shift}}
      - {key: KEY_S}
      - {key: KEY_D}
      - {key: KEY_F}
      - {key: KEY_G}
    - - {key: KEY_Z, w: {modkey: {key: KEY_Z, mods: [ctrl]}}}
      - {key: KEY_X, w: {modkey: {key: KEY_X, mods: [ctrl]}}}
      - {key: KEY_C, w: {modkey: {key: KEY_C, mods: [ctrl]}}}
      - {key: KEY_V, w: {modkey: {key: KEY_V, mods: [ctrl]}}}
      - {key: KEY_B}
    - - {key: KEY_LEFTSHIFT, label: "⇧"}
      - {key: KEY_TAB, s: {layer: {side: left, index: 1}}}
      - {key: KEY_SPACE, width: 2, e: arrow, w: delete, s: hide}
      - {pointer: true}
  - # symbols
    - - {key: KEY_1}
      - {key: KEY_2}
      - {key: KEY_3}
      - {key: KEY_4}
      - {key: KEY_5}
    - - {key: KEY_MINUS}
      - {key: KEY_EQUAL}
      - {key: KEY_LEFTBRACE}
      - {key: KEY_RIGHTBRACE}
      - {key: KEY_GRAVE}
    - - {key: KEY_ESC}
      - {key: KEY_CAPSLOCK, label: "⇪"}
      - {key: KEY_BACKSLASH}
      - {key: KEY_APOSTROPHE}
      - {key: KEY_F1}

right:
  - # base
    - - {key: KEY_Y, n: {key: KEY_6}}
      - {key: KEY_U, n: {key: KEY_7}}
      - {key: KEY_I, n: {key: KEY_8}}
      - {key: KEY_O, n: {key: KEY_9}}
      - {key: KEY_P, n: {key: KEY_0}}
    - - {key: KEY_H}
      - {key: KEY_J}
      - {key: KEY_K}
      - {key: KEY_L}
      - {key: KEY_SEMICOLON}
    - - {key: KEY_N}
      - {key: KEY_M}
      - {key: KEY_COMMA}
      - {key: KEY_DOT}
      - {key: KEY_SLASH}
    - - {key: KEY_LEFTMETA, label: "❖"}
      - {key: KEY_ENTER, n: {modkey: {key: KEY_ENTER, mods: [shift]}}}
      - {key: KEY_BACKSPACE, w: delete, e: select}
      - {key: KEY_DOT, s: {layer: {side: right, index: 1}}, label: "nav"}
  - # navigation
    - - {key: KEY_HOME}
      - {key: KEY_UP, n: scroll, s: scroll}
      - {key: KEY_END}
    - - {key: KEY_LEFT}
      - {key: KEY_DOWN}
      - {key: KEY_RIGHT}
    - - {key: KEY_PAGEUP}
      - {key: KEY_PAGEDOWN}
      - {key: KEY_INSERT}

settings:
  hold-delay-ms: 500
  repeat-interval-ms: 100
  swipe-distance: 5
  swipe-increment: 5
  scroll-step: 10
  delete-mode: direct
`
