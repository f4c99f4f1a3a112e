// Package x11 adapts an X11 session to the compositor core: RandR CRTCs
// become outputs, top-level X windows implement the shell window capability
// set, and element paint order is applied as X stacking order.
package x11

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and the windows adopted from it.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	windows         map[xproto.Window]*Window
	keyBindings     map[keyBinding]func()
	topologyChanged bool
}

// NewConnection establishes a connection to the X11 server.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil:   xu,
		Root:    xu.RootWin(),
		windows: make(map[xproto.Window]*Window),
	}, nil
}

// Pump dispatches all queued X events without blocking. DestroyNotify flips
// the affected window's liveness flag; key bindings registered via BindKey
// fire here. Called once per compositor tick before layout and composition.
func (c *Connection) Pump() {
	for {
		ev, xerr := c.XUtil.Conn().PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			continue
		}

		switch e := ev.(type) {
		case xproto.DestroyNotifyEvent:
			if w, ok := c.windows[e.Window]; ok {
				w.markDead()
				delete(c.windows, e.Window)
			}
		case xproto.UnmapNotifyEvent:
			if w, ok := c.windows[e.Window]; ok {
				w.markDead()
				delete(c.windows, e.Window)
			}
		case xproto.KeyPressEvent:
			c.dispatchKeyPress(e)
		case randr.ScreenChangeNotifyEvent:
			c.topologyChanged = true
		}
	}
}

// TopologyChanged reports whether an output topology change arrived since
// the last call, consuming the flag.
func (c *Connection) TopologyChanged() bool {
	changed := c.topologyChanged
	c.topologyChanged = false
	return changed
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
