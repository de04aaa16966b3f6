package gesture_test

import (
	"testing"

	"github.com/swipekbd/swipekbd/internal/gesture"
)

func TestStepAccumulator(t *testing.T) {

	t.Run("fractional deltas carry over", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(1)
		steps := []int{}
		for i := 0; i < 4; i++ {
			steps = append(steps, acc.Add(0.6))
		}
		expected := []int{0, 1, 0, 1}
		for i := range expected {
			if steps[i] != expected[i] {
				t.Errorf("add %d of 0.6 yielded %d steps, expected %d", i+1, steps[i], expected[i])
			}
		}
	})

	t.Run("whole multiples step immediately", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(5)
		if s := acc.Add(12); s != 2 {
			t.Errorf("delta 12 with step 5 yielded %d steps, expected 2", s)
		}
		if s := acc.Add(3); s != 1 {
			t.Errorf("remainder 2 plus delta 3 yielded %d steps, expected 1", s)
		}
	})

	t.Run("negative deltas step backwards", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(1)
		if s := acc.Add(-0.6); s != 0 {
			t.Errorf("first -0.6 yielded %d steps, expected 0", s)
		}
		if s := acc.Add(-0.6); s != -1 {
			t.Errorf("second -0.6 yielded %d steps, expected -1", s)
		}
	})

	t.Run("sign change consumes the remainder first", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(1)
		acc.Add(0.9)
		if s := acc.Add(-0.8); s != 0 {
			t.Errorf("0.9 then -0.8 yielded %d steps, expected 0", s)
		}
	})

	t.Run("reset discards the remainder", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(1)
		acc.Add(0.9)
		acc.Reset()
		if s := acc.Add(0.5); s != 0 {
			t.Errorf("0.5 after reset yielded %d steps, expected 0", s)
		}
	})

	t.Run("non-positive step size falls back to 1", func(t *testing.T) {
		acc := gesture.NewStepAccumulator(0)
		if s := acc.Add(2); s != 2 {
			t.Errorf("delta 2 with fallback step yielded %d steps, expected 2", s)
		}
	})
}
