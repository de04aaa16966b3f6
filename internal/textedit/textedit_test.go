package textedit_test

import (
	"testing"

	"github.com/swipekbd/swipekbd/internal/keycode"
	"github.com/swipekbd/swipekbd/internal/model"
	"github.com/swipekbd/swipekbd/internal/textedit"
)

type fakeKeyboard struct {
	events []string
}

func (k *fakeKeyboard) Press(code keycode.Code) error {
	k.events = append(k.events, "+"+keycode.Name(code))
	return nil
}

func (k *fakeKeyboard) Release(code keycode.Code) error {
	k.events = append(k.events, "-"+keycode.Name(code))
	return nil
}

func expectEvents(t *testing.T, got, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("events %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("events %v, expected %v", got, expected)
		}
	}
}

func TestArrowSession(t *testing.T) {

	t.Run("steps along the direction", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindArrow, model.DirEast, model.DeleteDirect)
		s.Step(2)
		s.End()
		expectEvents(t, kbd.events, []string{"+KEY_RIGHT", "-KEY_RIGHT", "+KEY_RIGHT", "-KEY_RIGHT"})
	})

	t.Run("negative steps reverse", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindArrow, model.DirEast, model.DeleteDirect)
		s.Step(-1)
		expectEvents(t, kbd.events, []string{"+KEY_LEFT", "-KEY_LEFT"})
	})

	t.Run("vertical directions use up and down", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindArrow, model.DirNorth, model.DeleteDirect)
		s.Step(1)
		expectEvents(t, kbd.events, []string{"+KEY_UP", "-KEY_UP"})
	})
}

func TestSelectSession(t *testing.T) {
	kbd := &fakeKeyboard{}
	s := textedit.NewSession(kbd, textedit.KindSelect, model.DirWest, model.DeleteDirect)
	s.Step(1)
	s.Step(-1)
	s.End()
	expectEvents(t, kbd.events, []string{
		"+KEY_LEFTSHIFT", "+KEY_LEFT", "-KEY_LEFT", "-KEY_LEFTSHIFT",
		"+KEY_LEFTSHIFT", "+KEY_RIGHT", "-KEY_RIGHT", "-KEY_LEFTSHIFT",
	})
}

func TestDeleteSessionDirect(t *testing.T) {

	t.Run("west deletes backwards", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirWest, model.DeleteDirect)
		s.Step(2)
		s.End()
		expectEvents(t, kbd.events, []string{
			"+KEY_BACKSPACE", "-KEY_BACKSPACE", "+KEY_BACKSPACE", "-KEY_BACKSPACE",
		})
	})

	t.Run("east deletes forwards", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirEast, model.DeleteDirect)
		s.Step(1)
		expectEvents(t, kbd.events, []string{"+KEY_DELETE", "-KEY_DELETE"})
	})

	t.Run("backward steps are ignored", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirWest, model.DeleteDirect)
		s.Step(-2)
		s.End()
		if len(kbd.events) != 0 {
			t.Errorf("backward delete steps emitted %v", kbd.events)
		}
	})
}

func TestDeleteSessionSelect(t *testing.T) {

	t.Run("selects then deletes on end", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirWest, model.DeleteSelect)
		s.Step(2)
		s.End()
		expectEvents(t, kbd.events, []string{
			"+KEY_LEFTSHIFT", "+KEY_LEFT", "-KEY_LEFT", "-KEY_LEFTSHIFT",
			"+KEY_LEFTSHIFT", "+KEY_LEFT", "-KEY_LEFT", "-KEY_LEFTSHIFT",
			"+KEY_BACKSPACE", "-KEY_BACKSPACE",
		})
	})

	t.Run("net-zero selection still deletes one character on end", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirWest, model.DeleteSelect)
		s.Step(1)
		s.Step(-1)
		s.End()
		expectEvents(t, kbd.events, []string{
			"+KEY_LEFTSHIFT", "+KEY_LEFT", "-KEY_LEFT", "-KEY_LEFTSHIFT",
			"+KEY_LEFTSHIFT", "+KEY_RIGHT", "-KEY_RIGHT", "-KEY_LEFTSHIFT",
			"+KEY_BACKSPACE", "-KEY_BACKSPACE",
		})
	})

	t.Run("no steps, no deletion", func(t *testing.T) {
		kbd := &fakeKeyboard{}
		s := textedit.NewSession(kbd, textedit.KindDelete, model.DirWest, model.DeleteSelect)
		s.End()
		if len(kbd.events) != 0 {
			t.Errorf("end without steps emitted %v", kbd.events)
		}
	})
}
