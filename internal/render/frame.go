package render

import (
	"time"

	"github.com/IshantPundir/aurora/internal/output"
	"github.com/IshantPundir/aurora/internal/shell"
)

// FramePhase is the per-output frame-lifecycle state. The cycle per tick is
// Idle -> Composing -> Rendering -> Presented -> Idle; a render failure
// aborts at Rendering and returns to Idle with the buffer unchanged.
type FramePhase int

const (
	FrameIdle FramePhase = iota
	FrameComposing
	FrameRendering
	FramePresented
)

func (p FramePhase) String() string {
	switch p {
	case FrameIdle:
		return "idle"
	case FrameComposing:
		return "composing"
	case FrameRendering:
		return "rendering"
	case FramePresented:
		return "presented"
	default:
		return "unknown"
	}
}

// frame is the per-output lifecycle bookkeeping. windows maps the window IDs
// participating in the current frame to their handles so presentation
// feedback can be attributed after the render pass.
type frame struct {
	phase   FramePhase
	windows map[uint64]shell.Window
}

func (f *frame) begin() {
	f.phase = FrameComposing
	f.windows = nil
}

func (f *frame) abort() {
	f.phase = FrameIdle
	f.windows = nil
}

func (f *frame) finish() {
	f.phase = FrameIdle
	f.windows = nil
}

// recordWindows captures the windows that can appear in this frame: the
// fullscreen-override window when the output has one, otherwise the mapped
// space elements.
func (f *frame) recordWindows(out *output.Output, space *shell.Space) {
	f.windows = make(map[uint64]shell.Window)
	if fs := out.Fullscreen(); fs != nil {
		f.windows[fs.ID()] = fs
		return
	}
	for _, w := range space.Elements() {
		f.windows[w.ID()] = w
	}
}

// PresentationFeedback is the timing metadata distributed to windows whose
// content was actually shown in a presented frame.
type PresentationFeedback struct {
	// Target is the frame-pacing timestamp the frame was aimed at. It is
	// supplied by the backend; this core treats it as opaque.
	Target time.Time

	// Refresh is the output's refresh interval, or zero when unknown.
	Refresh time.Duration

	// Vsync reports whether presentation was synchronized to the output's
	// vertical retrace.
	Vsync bool
}

// PresentationListener is implemented by windows that want presentation
// feedback. Windows without it are silently skipped.
type PresentationListener interface {
	Presented(fb PresentationFeedback)
}
