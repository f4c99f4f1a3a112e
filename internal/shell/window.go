// Package shell tracks the live client windows of the compositor: the
// capability surface a window must expose, the recency-ordered WindowSet,
// and the paintable Space windows are mapped into.
package shell

import (
	"github.com/IshantPundir/aurora/internal/geometry"
)

// Window is the capability set a client's top-level surface exposes to the
// layout and composition core. Implementations live outside this core (the
// X11 backend, the simulator's stub windows, test fakes).
//
// Liveness may be flipped from asynchronous callbacks; Alive must therefore
// be safe to call from the compositor loop while the flag is written
// elsewhere (implementations use an atomic flag). Everything else is called
// only from the single compositor loop.
type Window interface {
	// ID uniquely identifies the window for the lifetime of the process.
	ID() uint64

	// Alive reports whether the client surface still exists. Re-checked
	// immediately before every resize request and at every read of an
	// output's fullscreen-override slot.
	Alive() bool

	// RequestResize records a pending resize. Repeated requests before
	// CommitPendingResize coalesce to the latest size.
	RequestResize(width, height int)

	// CommitPendingResize sends the coalesced pending resize to the client.
	CommitPendingResize()

	// BoundingBox returns the window's current committed extent. The origin
	// is window-local; the Space supplies the on-output location.
	BoundingBox() geometry.Rect

	// RenderElementsAt returns the window's paintable elements placed at
	// loc, bottom-most first. The elements are a description only; no
	// drawing happens here.
	RenderElementsAt(loc geometry.Point, scale float64, alpha float32) []Element
}
