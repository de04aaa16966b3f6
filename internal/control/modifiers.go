package control

import (
	"github.com/swipekbd/swipekbd/internal/model"
)

// ModifierTracker holds modifier state that outlives a single touch: sticky
// modifiers toggled by modifier keys and held down at the sink until toggled
// off, and pending one-shot modifiers that apply to exactly the next emitted
// key and are cleared by that emission.
type ModifierTracker struct {
	pending map[model.Modifier]bool
	sticky  map[model.Modifier]bool
}

func NewModifierTracker() *ModifierTracker {
	return &ModifierTracker{
		pending: make(map[model.Modifier]bool),
		sticky:  make(map[model.Modifier]bool),
	}
}

// Request marks a modifier pending for the next key.
func (m *ModifierTracker) Request(mod model.Modifier) {
	m.pending[mod] = true
}

// Withdraw removes a pending modifier without consuming it, reporting whether
// it was pending. A gesture that registered a modifier and is then cancelled
// withdraws it so it cannot leak onto an unrelated key.
func (m *ModifierTracker) Withdraw(mod model.Modifier) bool {
	if !m.pending[mod] {
		return false
	}
	delete(m.pending, mod)
	return true
}

// ToggleSticky flips a modifier's sticky state and returns the new state.
// The caller presses or releases the modifier at the sink accordingly.
func (m *ModifierTracker) ToggleSticky(mod model.Modifier) bool {
	if m.sticky[mod] {
		delete(m.sticky, mod)
		return false
	}
	m.sticky[mod] = true
	return true
}

// IsSticky reports whether a modifier is held sticky, meaning it is already
// down at the sink and must not be pressed again around an emission.
func (m *ModifierTracker) IsSticky(mod model.Modifier) bool {
	return m.sticky[mod]
}

// Active returns all effective modifiers, sticky and pending, in a stable
// order.
func (m *ModifierTracker) Active() []model.Modifier {
	var mods []model.Modifier
	for _, mod := range []model.Modifier{model.ModShift, model.ModCtrl, model.ModAlt, model.ModMeta} {
		if m.sticky[mod] || m.pending[mod] {
			mods = append(mods, mod)
		}
	}
	return mods
}

// ConsumeAndClear returns the pending one-shot modifiers in a stable order
// and clears them. Sticky modifiers are unaffected; they stay down at the
// sink until toggled off.
func (m *ModifierTracker) ConsumeAndClear() []model.Modifier {
	var mods []model.Modifier
	for _, mod := range []model.Modifier{model.ModShift, model.ModCtrl, model.ModAlt, model.ModMeta} {
		if m.pending[mod] {
			mods = append(mods, mod)
		}
	}
	for mod := range m.pending {
		delete(m.pending, mod)
	}
	return mods
}
