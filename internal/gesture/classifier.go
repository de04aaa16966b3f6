// Package gesture classifies raw touch movement into discrete gestures: taps,
// hold-repeats, and directional swipes with hold, drag, and release phases.
//
// The package is windowing-agnostic: it consumes positions and timestamps in
// whatever stable local coordinate space the frontend provides (y growing
// downwards) and reports classified gesture phases to a Handler.
package gesture

import (
	"math"

	"github.com/swipekbd/swipekbd/internal/model"
)

// Pos is a position in local touch coordinates.
type Pos struct {
	X, Y float64
}

// Dist returns the euclidean distance to another position.
func (p Pos) Dist(o Pos) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return math.Hypot(dx, dy)
}

// Classify returns the cardinal direction nearest to the displacement vector.
// An exact diagonal resolves to the horizontal direction. A zero vector has
// no direction.
func Classify(dx, dy float64) model.Direction {
	if dx == 0 && dy == 0 {
		return model.DirNone
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return model.DirEast
		}
		return model.DirWest
	}
	if dy > 0 {
		return model.DirSouth
	}
	return model.DirNorth
}
