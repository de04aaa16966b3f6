// Package model holds the parsed, immutable representation of a keyboard
// layout: two sides of stacked layers, each layer a grid of keys, plus the
// gesture tuning settings the engine consumes.
//
// The model is produced once by the config loader and is read-only
// afterwards; all mutable gesture and layer state lives in the control
// package.
package model

import "time"

// Side identifies one half of the split keyboard.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Layout is a full keyboard layout. Each side has at least one layer; layer 0
// is the base layer. Layer indices are stable for the lifetime of the layout.
type Layout struct {
	Left  []Layer
	Right []Layer

	Settings Settings
}

// Layers returns the layer stack for the given side.
func (l *Layout) Layers(side Side) []Layer {
	if side == SideLeft {
		return l.Left
	}
	return l.Right
}

// MouseLayerIndex returns the index of the mouse layer, which the loader
// appends as the last left layer. It is forced active while a pointer key is
// held.
func (l *Layout) MouseLayerIndex() int {
	return len(l.Left) - 1
}

// Layer is an ordered sequence of key rows.
type Layer struct {
	Rows []Row
}

// Row is an ordered sequence of keys.
type Row []Key

// KeyAt returns the key at the given row/column of the layer, or nil if the
// position is out of range.
func (l *Layer) KeyAt(row, col int) Key {
	if row < 0 || row >= len(l.Rows) {
		return nil
	}
	r := l.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// DeleteMode selects how a Delete swipe-drag is carried out.
type DeleteMode int

const (
	// DeleteDirect emits backspace/delete per drag step.
	DeleteDirect DeleteMode = iota
	// DeleteSelect extends the selection per drag step and emits a single
	// backspace on release.
	DeleteSelect
)

func (m DeleteMode) String() string {
	if m == DeleteSelect {
		return "select"
	}
	return "direct"
}

// Settings are the gesture tuning knobs read from the layout file's settings
// block.
type Settings struct {
	// HoldDelay is how long a touch must rest before hold behavior triggers
	// (hold-repeat on the key, or the hold activation of a swipe).
	HoldDelay time.Duration

	// RepeatInterval is the period of hold-repeat emission.
	RepeatInterval time.Duration

	// SwipeDistance is the displacement (in local coordinate units) beyond
	// which a touch is classified as a swipe.
	SwipeDistance float64

	// SwipeIncrement is the movement per discrete drag step.
	SwipeIncrement float64

	// ScrollStep is the wheel amount emitted per scroll drag step.
	ScrollStep int

	// DeleteMode selects the Delete swipe behavior.
	DeleteMode DeleteMode
}

// DefaultSettings mirror the tuning of the reference hardware profile.
func DefaultSettings() Settings {
	return Settings{
		HoldDelay:      500 * time.Millisecond,
		RepeatInterval: 100 * time.Millisecond,
		SwipeDistance:  5,
		SwipeIncrement: 5,
		ScrollStep:     10,
		DeleteMode:     DeleteDirect,
	}
}
