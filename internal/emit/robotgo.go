package emit

import (
	"github.com/go-vgo/robotgo"

	"github.com/swipekbd/swipekbd/internal/model"
)

// RobotgoPointer is a Pointer driving the system cursor through robotgo.
type RobotgoPointer struct{}

func NewRobotgoPointer() *RobotgoPointer {
	return &RobotgoPointer{}
}

func (p *RobotgoPointer) Move(dx, dy int) error {
	x, y := robotgo.Location()
	robotgo.Move(x+dx, y+dy)
	return nil
}

func (p *RobotgoPointer) Button(btn model.PointerButton, down bool) error {
	state := "up"
	if down {
		state = "down"
	}
	robotgo.Toggle(buttonName(btn), state)
	return nil
}

func (p *RobotgoPointer) Scroll(steps int) error {
	// robotgo scrolls up for positive y.
	robotgo.Scroll(0, -steps)
	return nil
}

func buttonName(btn model.PointerButton) string {
	switch btn {
	case model.ButtonMiddle:
		return "center"
	case model.ButtonRight:
		return "right"
	default:
		return "left"
	}
}
