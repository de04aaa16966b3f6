package model

import "github.com/swipekbd/swipekbd/internal/keycode"

// Key is one cap on the keyboard. The concrete kind determines what taps,
// holds, and swipes on it do.
type Key interface {
	// Width is the cap width as a multiple of the base key size.
	Width() float64
	// Label is the string rendered on the cap.
	Label() string
}

// KeyType distinguishes how a basic key reacts to a tap: normal keys are
// tapped, modifier and lock keys are sticky toggles held until toggled again.
type KeyType int

const (
	KeyTypeNormal KeyType = iota
	KeyTypeModifier
	KeyTypeLock
)

// BasicKey is a regular key: a primary code, modifiers applied when tapped,
// and up to one swipe action per cardinal direction.
type BasicKey struct {
	Code keycode.Code
	Mods []Modifier

	North SwipeAction
	East  SwipeAction
	South SwipeAction
	West  SwipeAction

	WidthUnits float64
	LabelText  string
}

func (k *BasicKey) Width() float64 { return widthOrDefault(k.WidthUnits) }

func (k *BasicKey) Label() string {
	if k.LabelText != "" {
		return k.LabelText
	}
	return keycode.Glyph(k.Code)
}

// ActionFor returns the swipe action declared for the direction, or nil.
func (k *BasicKey) ActionFor(dir Direction) SwipeAction {
	switch dir {
	case DirNorth:
		return k.North
	case DirEast:
		return k.East
	case DirSouth:
		return k.South
	case DirWest:
		return k.West
	default:
		return nil
	}
}

// Type classifies the key by its primary code.
func (k *BasicKey) Type() KeyType {
	switch {
	case keycode.IsModifier(k.Code):
		return KeyTypeModifier
	case keycode.IsLock(k.Code):
		return KeyTypeLock
	default:
		return KeyTypeNormal
	}
}

// PointerKey enters pointer mode when held; drag deltas then move the mouse
// cursor until release.
type PointerKey struct {
	WidthUnits float64
	LabelText  string
}

func (k *PointerKey) Width() float64 { return widthOrDefault(k.WidthUnits) }

func (k *PointerKey) Label() string {
	if k.LabelText != "" {
		return k.LabelText
	}
	return "✱"
}

// PointerButton is a mouse button.
type PointerButton int

const (
	ButtonLeft PointerButton = iota
	ButtonMiddle
	ButtonRight
)

func (b PointerButton) String() string {
	switch b {
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "left"
	}
}

// PointerButtonKey presses a mouse button: a tap clicks, a hold keeps the
// button down until release (for dragging).
type PointerButtonKey struct {
	Button PointerButton

	WidthUnits float64
	LabelText  string
}

func (k *PointerButtonKey) Width() float64 { return widthOrDefault(k.WidthUnits) }

func (k *PointerButtonKey) Label() string {
	if k.LabelText != "" {
		return k.LabelText
	}
	switch k.Button {
	case ButtonMiddle:
		return "🖱M"
	case ButtonRight:
		return "🖱R"
	default:
		return "🖱L"
	}
}

// CommandKey runs an external command when tapped.
type CommandKey struct {
	Cmd  string
	Args []string

	WidthUnits float64
	LabelText  string
}

func (k *CommandKey) Width() float64 { return widthOrDefault(k.WidthUnits) }

func (k *CommandKey) Label() string {
	if k.LabelText != "" {
		return k.LabelText
	}
	return k.Cmd
}

func widthOrDefault(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
