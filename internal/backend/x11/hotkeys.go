package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// lockMasks are modifier bits ignored when matching key bindings: CapsLock
// and the Mod2 NumLock convention.
const lockMasks = uint16(xproto.ModMaskLock | xproto.ModMask2)

type keyBinding struct {
	mods    uint16
	keycode xproto.Keycode
}

// BindKey grabs a key sequence like "Mod4-f" on the root window and invokes
// fn when it is pressed. Dispatch happens inside Pump, so callbacks run on
// the compositor loop.
func (c *Connection) BindKey(sequence string, fn func()) error {
	if c.keyBindings == nil {
		keybind.Initialize(c.XUtil)
		c.keyBindings = make(map[keyBinding]func())
	}

	mods, keycodes, err := keybind.ParseString(c.XUtil, sequence)
	if err != nil {
		return fmt.Errorf("failed to parse key sequence %q: %w", sequence, err)
	}

	for _, keycode := range keycodes {
		if err := keybind.GrabChecked(c.XUtil, c.Root, mods, keycode); err != nil {
			return fmt.Errorf("failed to grab %q: %w", sequence, err)
		}
		c.keyBindings[keyBinding{mods: mods, keycode: keycode}] = fn
	}
	return nil
}

func (c *Connection) dispatchKeyPress(ev xproto.KeyPressEvent) {
	if c.keyBindings == nil {
		return
	}
	key := keyBinding{mods: ev.State &^ lockMasks, keycode: ev.Detail}
	if fn, ok := c.keyBindings[key]; ok {
		fn()
	}
}
