package pointer_test

import (
	"testing"

	"github.com/swipekbd/swipekbd/internal/gesture"
	"github.com/swipekbd/swipekbd/internal/model"
	"github.com/swipekbd/swipekbd/internal/pointer"
)

type fakeDevice struct {
	moves   [][2]int
	buttons []string
	scrolls []int
}

func (d *fakeDevice) Move(dx, dy int) error {
	d.moves = append(d.moves, [2]int{dx, dy})
	return nil
}

func (d *fakeDevice) Button(btn model.PointerButton, down bool) error {
	state := "up"
	if down {
		state = "down"
	}
	d.buttons = append(d.buttons, btn.String()+" "+state)
	return nil
}

func (d *fakeDevice) Scroll(steps int) error {
	d.scrolls = append(d.scrolls, steps)
	return nil
}

func TestFreeMove(t *testing.T) {

	t.Run("scales with distance from origin", func(t *testing.T) {
		dev := &fakeDevice{}
		c := pointer.NewController(dev)
		origin := gesture.Pos{X: 0, Y: 0}

		// at distance 8 the scale is cbrt(8)*2 = 4
		if err := c.FreeMove(origin, gesture.Pos{X: 8, Y: 0}, 8, 0); err != nil {
			t.Fatal(err)
		}
		if len(dev.moves) != 1 || dev.moves[0] != [2]int{32, 0} {
			t.Errorf("moves %v, expected [[32 0]]", dev.moves)
		}
	})

	t.Run("fractional motion accumulates instead of vanishing", func(t *testing.T) {
		dev := &fakeDevice{}
		c := pointer.NewController(dev)
		origin := gesture.Pos{X: 0, Y: 0}

		// at distance 1 the scale is 2: each delta contributes 0.6 pixels
		for i := 0; i < 4; i++ {
			if err := c.FreeMove(origin, gesture.Pos{X: 1, Y: 0}, 0.3, 0); err != nil {
				t.Fatal(err)
			}
		}
		if len(dev.moves) != 2 {
			t.Fatalf("moves %v, expected two whole-pixel moves", dev.moves)
		}
	})

	t.Run("no event for sub-pixel motion", func(t *testing.T) {
		dev := &fakeDevice{}
		c := pointer.NewController(dev)
		if err := c.FreeMove(gesture.Pos{}, gesture.Pos{X: 0.1, Y: 0}, 0.1, 0); err != nil {
			t.Fatal(err)
		}
		if len(dev.moves) != 0 {
			t.Errorf("sub-pixel motion moved the pointer: %v", dev.moves)
		}
	})

	t.Run("reset discards the remainder", func(t *testing.T) {
		dev := &fakeDevice{}
		c := pointer.NewController(dev)
		c.FreeMove(gesture.Pos{}, gesture.Pos{X: 1, Y: 0}, 0.4, 0)
		c.Reset()
		c.FreeMove(gesture.Pos{}, gesture.Pos{X: 1, Y: 0}, 0.4, 0)
		if len(dev.moves) != 0 {
			t.Errorf("remainder survived reset: %v", dev.moves)
		}
	})
}

func TestScroll(t *testing.T) {
	dev := &fakeDevice{}
	c := pointer.NewController(dev)

	if err := c.Scroll(0); err != nil {
		t.Fatal(err)
	}
	if len(dev.scrolls) != 0 {
		t.Errorf("zero scroll reached the device: %v", dev.scrolls)
	}

	if err := c.Scroll(-2); err != nil {
		t.Fatal(err)
	}
	if len(dev.scrolls) != 1 || dev.scrolls[0] != -2 {
		t.Errorf("scrolls %v, expected [-2]", dev.scrolls)
	}
}

func TestButton(t *testing.T) {
	dev := &fakeDevice{}
	c := pointer.NewController(dev)

	c.Button(model.ButtonRight, true)
	c.Button(model.ButtonRight, false)

	if len(dev.buttons) != 2 || dev.buttons[0] != "right down" || dev.buttons[1] != "right up" {
		t.Errorf("buttons %v, expected [right down, right up]", dev.buttons)
	}
}
