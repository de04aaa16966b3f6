//go:build !linux

package emit

import (
	"fmt"

	"github.com/swipekbd/swipekbd/internal/keycode"
)

// UinputKeyboard requires uinput; on other systems only the dry-run sinks
// are available.
type UinputKeyboard struct{}

func NewUinputKeyboard(name string) (*UinputKeyboard, error) {
	return nil, fmt.Errorf("virtual keyboard devices require linux uinput")
}

func (k *UinputKeyboard) Press(code keycode.Code) error   { return fmt.Errorf("no device") }
func (k *UinputKeyboard) Release(code keycode.Code) error { return fmt.Errorf("no device") }
func (k *UinputKeyboard) Close() error                    { return nil }
