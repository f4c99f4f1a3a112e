package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/render"
	"github.com/IshantPundir/aurora/internal/shell"
)

// Presenter realizes a composed element list on an X11 session. X paints
// window contents itself, so "rendering" here means applying each surface
// element's geometry and the list's paint order as X stacking order.
type Presenter struct {
	conn *Connection

	// fullRedraw forces age-0 frames for a few ticks after buffers were
	// reset, mirroring how a swapchain invalidation poisons damage history.
	fullRedraw uint8
}

var _ render.Renderer = (*Presenter)(nil)

// NewPresenter creates a presenter for the connection.
func NewPresenter(conn *Connection) *Presenter {
	return &Presenter{conn: conn}
}

// Render applies surface element geometry and stacking. Elements arrive in
// paint order, bottom-most first, so each window is stacked above the one
// before it. Damage is acknowledged but not used: the X server repaints
// exposed regions itself.
func (p *Presenter) Render(elements []shell.Element, damage []geometry.Rect, clear shell.Color) error {
	var prev xproto.Window
	seen := make(map[uint64]bool)

	for _, el := range elements {
		if el.Kind != shell.ElementSurface || seen[el.Source] {
			continue
		}
		seen[el.Source] = true

		w, ok := p.conn.windows[xproto.Window(el.Source)]
		if !ok || !w.Alive() {
			continue
		}

		w.MoveTo(el.Geometry.Loc())

		var err error
		if prev == 0 {
			err = xproto.ConfigureWindowChecked(
				p.conn.XUtil.Conn(), w.XID(),
				xproto.ConfigWindowStackMode,
				[]uint32{xproto.StackModeBelow},
			).Check()
		} else {
			err = xproto.ConfigureWindowChecked(
				p.conn.XUtil.Conn(), w.XID(),
				xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
				[]uint32{uint32(prev), xproto.StackModeAbove},
			).Check()
		}
		if err != nil {
			return fmt.Errorf("restack window %d: %w", w.XID(), err)
		}
		prev = w.XID()
	}

	return nil
}

// BufferAge reports how many frames old the current buffer contents are:
// 0 right after a reset (forcing a full repaint), 1 otherwise since X
// retains the previous frame.
func (p *Presenter) BufferAge() int {
	if p.fullRedraw > 0 {
		return 0
	}
	return 1
}

// ResetBuffers poisons the damage history for the next few frames.
func (p *Presenter) ResetBuffers() {
	p.fullRedraw = 4
}

// FrameDone advances the full-redraw countdown; called once per tick after
// composition.
func (p *Presenter) FrameDone() {
	if p.fullRedraw > 0 {
		p.fullRedraw--
	}
}
