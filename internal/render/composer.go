// Package render assembles the per-output, per-tick element list and drives
// the damage-tracked render call. It owns the per-output frame lifecycle.
package render

import (
	"log/slog"
	"math"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/layout"
	"github.com/IshantPundir/aurora/internal/output"
	"github.com/IshantPundir/aurora/internal/shell"
)

// FrameComposer builds the ordered element list for each output and runs it
// through the damage tracker. One composer serves all outputs; per-output
// frame state is tracked by output name.
type FrameComposer struct {
	previewPadding    int
	previewMaxColumns int
	logger            *slog.Logger

	frames    map[string]*frame
	lastShown map[uint64]string
}

// NewFrameComposer creates a composer. Non-positive preview parameters fall
// back to the grid defaults.
func NewFrameComposer(previewPadding, previewMaxColumns int, logger *slog.Logger) *FrameComposer {
	if previewPadding <= 0 {
		previewPadding = layout.DefaultPreviewPadding
	}
	if previewMaxColumns <= 0 {
		previewMaxColumns = layout.DefaultMaxColumns
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FrameComposer{
		previewPadding:    previewPadding,
		previewMaxColumns: previewMaxColumns,
		logger:            logger,
		frames:            make(map[string]*frame),
		lastShown:         make(map[uint64]string),
	}
}

// OutputElements produces the paint-ordered element list (first element is
// bottom-most) and the background clear color for one output.
//
// A live fullscreen-override window bypasses the normal space and any
// preview grid entirely: the result is that window's elements at the output
// origin with overlays above, on a fully transparent background. Otherwise
// the stacked space elements come first, then preview thumbnails when
// enabled, then overlays, on an opaque background. An empty space composes
// to just the overlays; that is valid, not an error.
func (c *FrameComposer) OutputElements(out *output.Output, space *shell.Space, overlays []shell.Element, previewEnabled bool) ([]shell.Element, shell.Color) {
	scale := out.Scale()

	if fs := out.Fullscreen(); fs != nil {
		elements := fs.RenderElementsAt(out.Geometry().Loc(), scale, 1.0)
		elements = append(elements, overlays...)
		return elements, ClearColorFullscreen
	}

	var elements []shell.Element
	for _, w := range space.Elements() {
		loc, ok := space.Location(w)
		if !ok {
			continue
		}
		elements = append(elements, w.RenderElementsAt(loc, scale, 1.0)...)
	}

	if previewEnabled && space.Len() > 0 {
		elements = append(elements, c.previewElements(out, space)...)
	}

	elements = append(elements, overlays...)
	return elements, ClearColor
}

// previewElements lays every mapped window out as a thumbnail: the grid
// planner supplies the cell, the window content is fit-within and centered
// at uniform scale, and each produced element is cropped to its cell.
func (c *FrameComposer) previewElements(out *output.Output, space *shell.Space) []shell.Element {
	windows := space.Elements()
	cells := layout.PlanThumbnailGrid(len(windows), out.Geometry().Size(), c.previewPadding, c.previewMaxColumns)
	if cells == nil {
		return nil
	}

	var previews []shell.Element
	for i, w := range windows {
		cell := cells[i].Bounds
		bbox := w.BoundingBox()
		fitted, fitScale := layout.FitWithin(bbox.Size(), cell)
		if fitted.IsEmpty() {
			continue
		}

		for _, el := range w.RenderElementsAt(geometry.Point{}, 1.0, 1.0) {
			placed := geometry.Rect{
				X:      fitted.X + int(math.Round(float64(el.Geometry.X)*fitScale)),
				Y:      fitted.Y + int(math.Round(float64(el.Geometry.Y)*fitScale)),
				Width:  int(math.Round(float64(el.Geometry.Width) * fitScale)),
				Height: int(math.Round(float64(el.Geometry.Height) * fitScale)),
			}
			cropped := placed.Intersection(cell)
			if cropped.IsEmpty() {
				continue
			}
			previews = append(previews, shell.Element{
				Kind:     shell.ElementPreview,
				Source:   el.Source,
				Geometry: cropped,
				Scale:    fitScale,
				Alpha:    el.Alpha,
				Fill:     el.Fill,
				Commit:   el.Commit,
			})
		}
	}
	return previews
}

// RenderOutput composes the output's elements and drives the damage-tracked
// render call. The frame advances Idle -> Composing -> Rendering; a render
// failure aborts the cycle there, leaving the output's buffer contents
// unchanged, and the tick is retried on the next cycle — never immediately.
// On success the frame stays in Rendering until FrameSubmitted distributes
// presentation feedback, or returns to Idle when nothing needed repainting.
func (c *FrameComposer) RenderOutput(out *output.Output, space *shell.Space, overlays []shell.Element, renderer Renderer, tracker *OutputDamageTracker, age int, previewEnabled bool) (RenderOutputResult, error) {
	f := c.frame(out)
	f.begin()

	elements, clear := c.OutputElements(out, space, overlays, previewEnabled)
	f.recordWindows(out, space)

	f.phase = FrameRendering
	result, err := tracker.RenderOutput(renderer, age, elements, clear)
	if err != nil {
		f.abort()
		c.logger.Warn("render failed", "output", out.Name(), "error", err)
		return RenderOutputResult{}, err
	}

	if result.Damage == nil {
		// Nothing repainted, nothing to present.
		f.phase = FrameIdle
		return result, nil
	}
	return result, nil
}

// FrameSubmitted marks the output's rendered frame as presented and
// distributes presentation feedback to every window whose surface was
// actually shown. It also updates last-shown-on-output attribution.
func (c *FrameComposer) FrameSubmitted(out *output.Output, fb PresentationFeedback, states ElementStates) {
	f := c.frame(out)
	if f.phase != FrameRendering {
		return
	}
	f.phase = FramePresented

	for key, state := range states {
		if key.Kind != shell.ElementSurface || !state.Presented {
			continue
		}
		w, ok := f.windows[key.Source]
		if !ok {
			continue
		}
		c.lastShown[key.Source] = out.Name()
		if listener, ok := w.(PresentationListener); ok {
			listener.Presented(fb)
		}
	}

	f.finish()
}

// LastShownOn returns the name of the output the window was last presented
// on. ok is false for windows that were never presented.
func (c *FrameComposer) LastShownOn(windowID uint64) (string, bool) {
	name, ok := c.lastShown[windowID]
	return name, ok
}

// FramePhase returns the output's current frame-lifecycle phase.
func (c *FrameComposer) FramePhase(out *output.Output) FramePhase {
	return c.frame(out).phase
}

func (c *FrameComposer) frame(out *output.Output) *frame {
	f, ok := c.frames[out.Name()]
	if !ok {
		f = &frame{phase: FrameIdle}
		c.frames[out.Name()] = f
	}
	return f
}
