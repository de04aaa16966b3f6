//go:build linux

package emit

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"

	"github.com/swipekbd/swipekbd/internal/keycode"
)

// UinputKeyboard is a Keyboard backed by a virtual uinput device. The device
// advertises every key code the layout schema can name.
type UinputKeyboard struct {
	dev *evdev.InputDevice
}

// NewUinputKeyboard creates the virtual keyboard device. Requires access to
// /dev/uinput.
func NewUinputKeyboard(name string) (*UinputKeyboard, error) {
	dev, err := evdev.CreateDevice(
		name,
		evdev.InputID{BusType: 0x03, Vendor: 0x4711, Product: 0x0816, Version: 1},
		map[evdev.EvType][]evdev.EvCode{
			evdev.EV_KEY: keycode.All(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create uinput device: %w", err)
	}
	return &UinputKeyboard{dev: dev}, nil
}

func (k *UinputKeyboard) Press(code keycode.Code) error {
	return k.write(code, 1)
}

func (k *UinputKeyboard) Release(code keycode.Code) error {
	return k.write(code, 0)
}

func (k *UinputKeyboard) write(code keycode.Code, value int32) error {
	err := k.dev.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_KEY,
		Code:  code,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("cannot write key event %s: %w", keycode.Name(code), err)
	}
	err = k.dev.WriteOne(&evdev.InputEvent{
		Type: evdev.EV_SYN,
		Code: evdev.SYN_REPORT,
	})
	if err != nil {
		return fmt.Errorf("cannot write syn report: %w", err)
	}
	return nil
}

// Close removes the virtual device.
func (k *UinputKeyboard) Close() error {
	return k.dev.Close()
}
