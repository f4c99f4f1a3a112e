package tui

import (
	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/render"
	"github.com/IshantPundir/aurora/internal/shell"
)

// simWindow is an in-process window used by the simulator. It honors the
// same capability contract as a real backend window: resizes coalesce until
// committed, and liveness gates every operation.
type simWindow struct {
	id    uint64
	alive bool

	width  int
	height int

	pendingW   int
	pendingH   int
	hasPending bool

	commit    uint64
	presented int
}

var (
	_ shell.Window                = (*simWindow)(nil)
	_ render.PresentationListener = (*simWindow)(nil)
)

// windowFills gives each simulated window a distinguishable decoration
// color, cycling by id.
var windowFills = []shell.Color{
	{0.75, 0.25, 0.25, 1.0},
	{0.25, 0.65, 0.35, 1.0},
	{0.25, 0.40, 0.80, 1.0},
	{0.80, 0.65, 0.20, 1.0},
	{0.60, 0.30, 0.70, 1.0},
}

func newSimWindow(id uint64, width, height int) *simWindow {
	return &simWindow{
		id:     id,
		alive:  true,
		width:  width,
		height: height,
	}
}

func (w *simWindow) ID() uint64  { return w.id }
func (w *simWindow) Alive() bool { return w.alive }

func (w *simWindow) close() { w.alive = false }

func (w *simWindow) RequestResize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	w.pendingW = width
	w.pendingH = height
	w.hasPending = true
}

func (w *simWindow) CommitPendingResize() {
	if !w.hasPending || !w.alive {
		return
	}
	w.hasPending = false
	w.width = w.pendingW
	w.height = w.pendingH
	w.commit++
}

func (w *simWindow) BoundingBox() geometry.Rect {
	return geometry.Rect{Width: w.width, Height: w.height}
}

func (w *simWindow) RenderElementsAt(loc geometry.Point, scale float64, alpha float32) []shell.Element {
	placed := geometry.FromLocAndSize(loc, w.BoundingBox().Size())
	fill := windowFills[w.id%uint64(len(windowFills))]

	return []shell.Element{
		{
			Kind:     shell.ElementDecoration,
			Source:   w.id,
			Geometry: placed,
			Scale:    scale,
			Alpha:    alpha,
			Fill:     fill,
			Commit:   w.commit,
		},
		{
			Kind:     shell.ElementSurface,
			Source:   w.id,
			Geometry: placed,
			Scale:    scale,
			Alpha:    alpha,
			Commit:   w.commit,
		},
	}
}

// Presented counts presentation feedback so the simulator can show that
// hidden windows stop receiving it.
func (w *simWindow) Presented(fb render.PresentationFeedback) {
	w.presented++
}
