package shell

import (
	"github.com/IshantPundir/aurora/internal/geometry"
)

// ElementKind discriminates the closed set of paintable element variants.
// The compositor dispatches on the kind at a single point; renderers must
// treat unknown kinds as a programming error.
type ElementKind int

const (
	// ElementSurface is stacked window content.
	ElementSurface ElementKind = iota
	// ElementDecoration is a solid decoration fill behind window content.
	ElementDecoration
	// ElementPreview is a scaled-down, non-authoritative thumbnail of a
	// window, produced for the overview grid.
	ElementPreview
	// ElementOverlay is caller-supplied content painted above everything.
	ElementOverlay
)

func (k ElementKind) String() string {
	switch k {
	case ElementSurface:
		return "surface"
	case ElementDecoration:
		return "decoration"
	case ElementPreview:
		return "preview"
	case ElementOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Color is premultiplied RGBA, components in [0,1].
type Color [4]float32

// Element describes one paintable unit. The position of an element in an
// emitted sequence is its paint order: first is bottom-most.
type Element struct {
	Kind ElementKind

	// Source identifies what the element was produced from (the window ID
	// for surfaces, decorations, and previews; caller-chosen for overlays).
	// Together with Kind it is the element's identity for damage tracking.
	Source uint64

	// Geometry is the element's placement on the output, in the output's
	// logical coordinates.
	Geometry geometry.Rect

	// Scale is the factor applied to the source content. 1 for unscaled
	// window content; the fit scale for previews.
	Scale float64

	// Alpha is the element's opacity in [0,1].
	Alpha float32

	// Fill is the decoration color. Only meaningful for ElementDecoration
	// and ElementOverlay.
	Fill Color

	// Commit is the source content generation. The damage tracker repaints
	// an element whose commit changed even when its geometry did not.
	Commit uint64
}
