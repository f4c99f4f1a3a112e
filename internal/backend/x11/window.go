package x11

import (
	"fmt"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/shell"
)

// Window implements the shell window capability set for one top-level X11
// window. The liveness flag is the only state written outside the
// compositor loop (from DestroyNotify handling); everything else is
// loop-owned.
type Window struct {
	conn *Connection
	id   xproto.Window

	alive atomic.Bool

	// Pending resize, coalesced until CommitPendingResize.
	pendingW   int
	pendingH   int
	hasPending bool

	// Committed extent, updated on each commit.
	bbox   geometry.Rect
	commit uint64
}

var _ shell.Window = (*Window)(nil)

// AdoptWindow wraps an existing top-level X window so the layout core can
// manage it. Registers the window for DestroyNotify tracking and subscribes
// to structure events.
func (c *Connection) AdoptWindow(id xproto.Window) (*Window, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(id)).Reply()
	if err != nil {
		return nil, err
	}

	if err := xwindow.New(c.XUtil, id).Listen(xproto.EventMaskStructureNotify); err != nil {
		return nil, err
	}

	w := &Window{
		conn: c,
		id:   id,
		bbox: geometry.Rect{Width: int(geom.Width), Height: int(geom.Height)},
	}
	w.alive.Store(true)
	c.windows[id] = w
	return w, nil
}

// AdoptNewWindows adopts every top-level client window not yet tracked and
// returns the newly adopted ones. Windows that vanish mid-adoption are
// skipped.
func (c *Connection) AdoptNewWindows() ([]*Window, error) {
	ids, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to list client windows: %w", err)
	}

	var adopted []*Window
	for _, id := range ids {
		if _, ok := c.windows[id]; ok {
			continue
		}
		w, err := c.AdoptWindow(id)
		if err != nil {
			continue
		}
		adopted = append(adopted, w)
	}
	return adopted, nil
}

// ID returns the X window ID widened to the core's handle space.
func (w *Window) ID() uint64 {
	return uint64(w.id)
}

// Alive reports whether the X window still exists.
func (w *Window) Alive() bool {
	return w.alive.Load()
}

func (w *Window) markDead() {
	w.alive.Store(false)
}

// RequestResize records a pending resize; repeated requests before commit
// keep only the latest size.
func (w *Window) RequestResize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	w.pendingW = width
	w.pendingH = height
	w.hasPending = true
}

// CommitPendingResize sends the coalesced pending size to the X server via
// EWMH, falling back to a direct configure when the window manager side of
// the session ignores the request.
func (w *Window) CommitPendingResize() {
	if !w.hasPending || !w.Alive() {
		return
	}
	w.hasPending = false

	err := ewmh.MoveresizeWindow(w.conn.XUtil, w.id, w.bbox.X, w.bbox.Y, w.pendingW, w.pendingH)
	if err != nil {
		xwindow.New(w.conn.XUtil, w.id).Resize(w.pendingW, w.pendingH)
	}

	w.bbox.Width = w.pendingW
	w.bbox.Height = w.pendingH
	w.commit++
}

// BoundingBox returns the committed extent, origin window-local.
func (w *Window) BoundingBox() geometry.Rect {
	return geometry.Rect{Width: w.bbox.Width, Height: w.bbox.Height}
}

// RenderElementsAt describes the window as a decoration fill below its
// surface content, both placed at loc.
func (w *Window) RenderElementsAt(loc geometry.Point, scale float64, alpha float32) []shell.Element {
	bbox := w.BoundingBox()
	placed := geometry.FromLocAndSize(loc, bbox.Size())

	return []shell.Element{
		{
			Kind:     shell.ElementDecoration,
			Source:   w.ID(),
			Geometry: placed,
			Scale:    scale,
			Alpha:    alpha,
			Fill:     shell.Color{0.12, 0.12, 0.12, 1.0},
			Commit:   w.commit,
		},
		{
			Kind:     shell.ElementSurface,
			Source:   w.ID(),
			Geometry: placed,
			Scale:    scale,
			Alpha:    alpha,
			Commit:   w.commit,
		},
	}
}

// MoveTo positions the window at the given root coordinates. Used by the
// presenter when applying mapped locations.
func (w *Window) MoveTo(loc geometry.Point) {
	if !w.Alive() {
		return
	}
	if err := ewmh.MoveWindow(w.conn.XUtil, w.id, loc.X, loc.Y); err != nil {
		xwindow.New(w.conn.XUtil, w.id).Move(loc.X, loc.Y)
	}
	w.bbox.X = loc.X
	w.bbox.Y = loc.Y
}

// XID returns the raw X window identifier.
func (w *Window) XID() xproto.Window {
	return w.id
}
