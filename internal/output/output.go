// Package output models display sinks: logical geometry, scale, transform,
// the active mode, and the per-output fullscreen-override slot.
package output

import (
	"fmt"
	"time"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/shell"
)

// Transform is the rotation/flip applied to an output.
type Transform int

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

// Mode is a display resolution plus refresh rate in millihertz.
type Mode struct {
	Size    geometry.Size
	Refresh int
}

// RefreshInterval returns the duration of one refresh cycle, or zero when
// the refresh rate is unknown.
func (m Mode) RefreshInterval() time.Duration {
	if m.Refresh <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) * 1000 / float64(m.Refresh))
}

// Output is a display sink. Geometry, scale, transform, and mode are owned
// by the external shell and read-only to the layout core; the fullscreen
// override slot is the one piece of output state this core writes.
type Output struct {
	name      string
	geometry  geometry.Rect
	scale     float64
	transform Transform
	mode      Mode

	// fullscreen holds the window that bypasses normal composition on this
	// output, or nil. Liveness is re-checked at every read because the
	// window can die between ticks.
	fullscreen shell.Window
}

// New creates an output with the given name and logical geometry. Scale
// defaults to 1 and transform to normal.
func New(name string, geom geometry.Rect, mode Mode) *Output {
	return &Output{
		name:      name,
		geometry:  geom,
		scale:     1.0,
		transform: TransformNormal,
		mode:      mode,
	}
}

// Name returns the output's identifier, e.g. "eDP-1" or "winit".
func (o *Output) Name() string { return o.name }

// Geometry returns the output's logical geometry (origin and size).
func (o *Output) Geometry() geometry.Rect { return o.geometry }

// Scale returns the output's scale factor.
func (o *Output) Scale() float64 { return o.scale }

// Transform returns the output's transform.
func (o *Output) Transform() Transform { return o.transform }

// Mode returns the output's active mode.
func (o *Output) Mode() Mode { return o.mode }

// SetGeometry updates the logical geometry. Called by the external shell on
// topology changes.
func (o *Output) SetGeometry(geom geometry.Rect) { o.geometry = geom }

// SetScale updates the scale factor.
func (o *Output) SetScale(scale float64) {
	if scale > 0 {
		o.scale = scale
	}
}

// SetTransform updates the transform.
func (o *Output) SetTransform(t Transform) { o.transform = t }

// SetMode updates the active mode. Called by the external shell when the
// display mode changes.
func (o *Output) SetMode(mode Mode) { o.mode = mode }

// SetFullscreen installs a fullscreen-override window on this output.
func (o *Output) SetFullscreen(w shell.Window) {
	o.fullscreen = w
}

// Fullscreen returns the live fullscreen-override window, or nil. A dead
// reference is cleared as a side effect, mirroring the fact that a window
// can die between the tick that set it and the tick that reads it.
func (o *Output) Fullscreen() shell.Window {
	if o.fullscreen != nil && !o.fullscreen.Alive() {
		o.fullscreen = nil
	}
	return o.fullscreen
}

// ClearFullscreen removes the override and returns the previous window, if
// any.
func (o *Output) ClearFullscreen() shell.Window {
	w := o.fullscreen
	o.fullscreen = nil
	return w
}

func (o *Output) String() string {
	return fmt.Sprintf("%s (%dx%d at %d,%d)",
		o.name, o.geometry.Width, o.geometry.Height, o.geometry.X, o.geometry.Y)
}
