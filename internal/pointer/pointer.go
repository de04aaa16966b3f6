// Package pointer translates touch movement on pointer keys into cursor
// motion, scrolling, and button state.
package pointer

import (
	"math"

	"github.com/swipekbd/swipekbd/internal/emit"
	"github.com/swipekbd/swipekbd/internal/gesture"
	"github.com/swipekbd/swipekbd/internal/model"
)

// Controller drives one pointer device. It keeps fractional motion between
// events so slow movement is not truncated away.
type Controller struct {
	dev emit.Pointer

	moveX gesture.StepAccumulator
	moveY gesture.StepAccumulator
}

func NewController(dev emit.Pointer) *Controller {
	return &Controller{
		dev:   dev,
		moveX: gesture.NewStepAccumulator(1),
		moveY: gesture.NewStepAccumulator(1),
	}
}

// FreeMove moves the cursor by a touch delta, scaled up with the touch's
// distance from its origin so small corrections stay precise while long
// sweeps cover the whole screen.
func (c *Controller) FreeMove(origin, pos gesture.Pos, dx, dy float64) error {
	scale := math.Cbrt(origin.Dist(pos)) * 2
	mx := c.moveX.Add(dx * scale)
	my := c.moveY.Add(dy * scale)
	if mx == 0 && my == 0 {
		return nil
	}
	return c.dev.Move(mx, my)
}

// Reset drops accumulated fractional motion, called when a pointer gesture
// begins.
func (c *Controller) Reset() {
	c.moveX.Reset()
	c.moveY.Reset()
}

// Scroll emits whole wheel detents. Positive steps scroll down.
func (c *Controller) Scroll(steps int) error {
	if steps == 0 {
		return nil
	}
	return c.dev.Scroll(steps)
}

// Button presses or releases a mouse button.
func (c *Controller) Button(btn model.PointerButton, down bool) error {
	return c.dev.Button(btn, down)
}
