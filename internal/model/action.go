package model

import "github.com/swipekbd/swipekbd/internal/keycode"

// SwipeAction is an action bound to a directional swipe on a basic key.
//
// The variant set is closed: the dispatcher matches it exhaustively, so a new
// action kind is a compile-time change, not a lookup-table entry.
//
// Actions differ in when they fire:
//   - KeySwipe, ModKeySwipe, CommandSwipe fire once when the swipe direction
//     is classified.
//   - ModifiedSwipe registers a pending modifier at classification; the key's
//     primary code fires with it on release.
//   - LayerHoldSwipe activates on swipe-hold and deactivates on release.
//   - ArrowSwipe, SelectSwipe, DeleteSwipe, ScrollSwipe fire repeatedly,
//     proportional to continued drag movement.
//   - HideSwipe fires on release, so the release itself is still processed
//     while the keyboard is visible.
type SwipeAction interface {
	isSwipeAction()
}

// KeySwipe fires a one-shot press of another key.
type KeySwipe struct {
	Code keycode.Code
}

// ModKeySwipe fires a one-shot press of another key with modifiers applied.
type ModKeySwipe struct {
	Code keycode.Code
	Mods []Modifier
}

// LayerHoldSwipe forces a layer active for as long as the swipe is held.
type LayerHoldSwipe struct {
	Side  Side
	Index int
}

// ModifiedSwipe fires the swiped key's own primary code with the given
// modifier on release.
type ModifiedSwipe struct {
	Mod Modifier
}

// ArrowSwipe moves the text cursor in the swipe direction per drag step.
type ArrowSwipe struct{}

// SelectSwipe extends the text selection in the swipe direction per drag step.
type SelectSwipe struct{}

// DeleteSwipe deletes text in the swipe direction per drag step.
type DeleteSwipe struct{}

// ScrollSwipe emits scroll-wheel events in the swipe direction per drag step.
type ScrollSwipe struct{}

// CommandSwipe runs an external command.
type CommandSwipe struct {
	Cmd  string
	Args []string
}

// HideSwipe hides the keyboard.
type HideSwipe struct{}

func (KeySwipe) isSwipeAction()       {}
func (ModKeySwipe) isSwipeAction()    {}
func (LayerHoldSwipe) isSwipeAction() {}
func (ModifiedSwipe) isSwipeAction()  {}
func (ArrowSwipe) isSwipeAction()     {}
func (SelectSwipe) isSwipeAction()    {}
func (DeleteSwipe) isSwipeAction()    {}
func (ScrollSwipe) isSwipeAction()    {}
func (CommandSwipe) isSwipeAction()   {}
func (HideSwipe) isSwipeAction()      {}
