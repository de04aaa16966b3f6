package model

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/keycode"
)

// Direction is a cardinal swipe direction in screen coordinates (north is
// negative y).
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirEast
	DirSouth
	DirWest
)

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	default:
		return "none"
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// Horizontal reports whether the direction is east or west.
func (d Direction) Horizontal() bool {
	return d == DirEast || d == DirWest
}

// ArrowKey returns the cursor key corresponding to the direction.
func (d Direction) ArrowKey() keycode.Code {
	switch d {
	case DirNorth:
		return evdev.KEY_UP
	case DirEast:
		return evdev.KEY_RIGHT
	case DirSouth:
		return evdev.KEY_DOWN
	case DirWest:
		return evdev.KEY_LEFT
	default:
		return evdev.KEY_RESERVED
	}
}
