package layout

import (
	"math"

	"github.com/IshantPundir/aurora/internal/geometry"
)

// Thumbnail grid defaults. The planner produces non-destructive preview
// rectangles only; it never changes a window's actual size.
const (
	DefaultPreviewPadding = 10
	DefaultMaxColumns     = 4
)

// Cell is one slot of the thumbnail grid.
type Cell struct {
	Index  int
	Column int
	Row    int
	Bounds geometry.Rect
}

// GridDimensions returns the column/row counts for n elements with at most
// maxColumns per row.
func GridDimensions(n, maxColumns int) (columns, rows int) {
	if n <= 0 {
		return 0, 0
	}
	if maxColumns < 1 {
		maxColumns = DefaultMaxColumns
	}
	columns = min(n, maxColumns)
	rows = int(math.Ceil(float64(n) / float64(columns)))
	return columns, rows
}

// PlanThumbnailGrid computes the preview cell for each of n elements on an
// output of the given logical size. Pure function: no window state is read
// or written.
func PlanThumbnailGrid(n int, outputSize geometry.Size, padding, maxColumns int) []Cell {
	if n <= 0 || outputSize.IsEmpty() {
		return nil
	}
	if padding < 0 {
		padding = DefaultPreviewPadding
	}

	columns, rows := GridDimensions(n, maxColumns)

	cellW := int(math.Round(float64(outputSize.Width)/float64(columns))) - padding*2
	cellH := int(math.Round(float64(outputSize.Height)/float64(rows))) - padding*2

	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		column := i % columns
		row := i / columns
		cells[i] = Cell{
			Index:  i,
			Column: column,
			Row:    row,
			Bounds: geometry.Rect{
				X:      padding + (padding+cellW)*column,
				Y:      padding + (padding+cellH)*row,
				Width:  cellW,
				Height: cellH,
			},
		}
	}
	return cells
}

// FitWithin scales content uniformly to fit inside the cell and centers it.
// The content is never stretched anisotropically. Returns the placed
// rectangle and the scale applied.
func FitWithin(content geometry.Size, cell geometry.Rect) (geometry.Rect, float64) {
	if content.IsEmpty() || cell.IsEmpty() {
		return geometry.Rect{}, 0
	}

	scale := math.Min(
		float64(cell.Width)/float64(content.Width),
		float64(cell.Height)/float64(content.Height),
	)

	w := int(math.Round(float64(content.Width) * scale))
	h := int(math.Round(float64(content.Height) * scale))
	if w > cell.Width {
		w = cell.Width
	}
	if h > cell.Height {
		h = cell.Height
	}

	return geometry.Rect{
		X:      cell.X + (cell.Width-w)/2,
		Y:      cell.Y + (cell.Height-h)/2,
		Width:  w,
		Height: h,
	}, scale
}
