package control

import (
	"github.com/rs/zerolog/log"
)

// layerEntry is one pushed layer together with the touch that owns it.
type layerEntry struct {
	index int
	owner int64
}

// LayerStack tracks the active layer of one keyboard side. The base layer
// (index 0) is always at the bottom and has no owner; every other entry was
// pushed by a live touch and is removed when that touch ends, regardless of
// entries pushed above it in the meantime.
type LayerStack struct {
	layerCount int
	entries    []layerEntry
}

// NewLayerStack returns a stack over layerCount layers with only the base
// layer active.
func NewLayerStack(layerCount int) *LayerStack {
	return &LayerStack{layerCount: layerCount}
}

// Current returns the index of the topmost active layer.
func (s *LayerStack) Current() int {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[len(s.entries)-1].index
}

// Push activates the given layer on behalf of a touch. Out-of-range indices
// are rejected with a warning so a bad layout reference cannot take the
// keyboard into an undrawable state.
func (s *LayerStack) Push(index int, owner int64) bool {
	if index < 0 || index >= s.layerCount {
		log.Warn().Int("layer", index).Int("layers", s.layerCount).
			Msg("layer reference out of range; ignoring")
		return false
	}
	s.entries = append(s.entries, layerEntry{index: index, owner: owner})
	return true
}

// Pop removes the entry owned by the given touch, searching from the top.
// It reports whether an entry was removed.
func (s *LayerStack) Pop(owner int64) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].owner == owner {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Depth returns the number of pushed entries above the base layer.
func (s *LayerStack) Depth() int { return len(s.entries) }
