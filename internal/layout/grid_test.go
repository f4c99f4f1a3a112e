package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/IshantPundir/aurora/internal/geometry"
)

func TestGridDimensions(t *testing.T) {
	tests := []struct {
		n, maxColumns int
		wantCols      int
		wantRows      int
	}{
		{n: 1, maxColumns: 4, wantCols: 1, wantRows: 1},
		{n: 2, maxColumns: 4, wantCols: 2, wantRows: 1},
		{n: 3, maxColumns: 4, wantCols: 3, wantRows: 1},
		{n: 4, maxColumns: 4, wantCols: 4, wantRows: 1},
		{n: 5, maxColumns: 4, wantCols: 4, wantRows: 2},
		{n: 8, maxColumns: 4, wantCols: 4, wantRows: 2},
		{n: 9, maxColumns: 4, wantCols: 4, wantRows: 3},
		{n: 5, maxColumns: 3, wantCols: 3, wantRows: 2},
		{n: 0, maxColumns: 4, wantCols: 0, wantRows: 0},
	}

	for _, tt := range tests {
		cols, rows := GridDimensions(tt.n, tt.maxColumns)
		if cols != tt.wantCols || rows != tt.wantRows {
			t.Errorf("GridDimensions(%d, %d) = %dx%d, want %dx%d",
				tt.n, tt.maxColumns, cols, rows, tt.wantCols, tt.wantRows)
		}
	}
}

func TestPlanThumbnailGrid_FiveWindows(t *testing.T) {
	// 5 windows on 1920x1080 with padding 10: 4 columns, 2 rows.
	// cellW = round(1920/4) - 20 = 460, cellH = round(1080/2) - 20 = 520.
	cells := PlanThumbnailGrid(5, geometry.Size{Width: 1920, Height: 1080}, 10, 4)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(cells))
	}

	for i, cell := range cells {
		if cell.Bounds.Width != 460 || cell.Bounds.Height != 520 {
			t.Fatalf("cell %d is %dx%d, want 460x520", i, cell.Bounds.Width, cell.Bounds.Height)
		}
	}

	// Index 4 wraps to the second row, first column.
	want := Cell{Index: 4, Column: 0, Row: 1, Bounds: geometry.Rect{X: 10, Y: 540, Width: 460, Height: 520}}
	if diff := cmp.Diff(want, cells[4]); diff != "" {
		t.Fatalf("cell 4 mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanThumbnailGrid_CellsDisjointAndInBounds(t *testing.T) {
	outputSize := geometry.Size{Width: 1920, Height: 1080}
	full := geometry.Rect{Width: outputSize.Width, Height: outputSize.Height}

	for n := 1; n <= 12; n++ {
		cells := PlanThumbnailGrid(n, outputSize, 10, 4)
		if len(cells) != n {
			t.Fatalf("n=%d: expected %d cells, got %d", n, n, len(cells))
		}
		for i, a := range cells {
			if !full.ContainsRect(a.Bounds) {
				t.Fatalf("n=%d: cell %d %+v escapes the output", n, i, a.Bounds)
			}
			for j, b := range cells[:i] {
				if a.Bounds.Overlaps(b.Bounds) {
					t.Fatalf("n=%d: cells %d and %d overlap", n, i, j)
				}
			}
		}
	}
}

func TestPlanThumbnailGrid_Degenerate(t *testing.T) {
	if cells := PlanThumbnailGrid(0, geometry.Size{Width: 100, Height: 100}, 10, 4); cells != nil {
		t.Fatalf("expected nil for zero windows")
	}
	if cells := PlanThumbnailGrid(3, geometry.Size{}, 10, 4); cells != nil {
		t.Fatalf("expected nil for empty output")
	}
}

func TestFitWithin_CentersAndPreservesAspect(t *testing.T) {
	cell := geometry.Rect{X: 10, Y: 10, Width: 460, Height: 520}

	tests := []struct {
		name    string
		content geometry.Size
	}{
		{name: "wide content", content: geometry.Size{Width: 1920, Height: 1080}},
		{name: "tall content", content: geometry.Size{Width: 600, Height: 1200}},
		{name: "smaller than cell", content: geometry.Size{Width: 100, Height: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fitted, scale := FitWithin(tt.content, cell)
			if fitted.IsEmpty() || scale <= 0 {
				t.Fatalf("degenerate fit: %+v scale=%v", fitted, scale)
			}
			if !cell.ContainsRect(fitted) {
				t.Fatalf("fitted %+v escapes cell %+v", fitted, cell)
			}

			// Centered within the cell on both axes (integer rounding may
			// leave a 1-unit bias).
			leftGap := fitted.X - cell.X
			rightGap := cell.X + cell.Width - (fitted.X + fitted.Width)
			if diff := leftGap - rightGap; diff < -1 || diff > 1 {
				t.Fatalf("not horizontally centered: gaps %d / %d", leftGap, rightGap)
			}
			topGap := fitted.Y - cell.Y
			bottomGap := cell.Y + cell.Height - (fitted.Y + fitted.Height)
			if diff := topGap - bottomGap; diff < -1 || diff > 1 {
				t.Fatalf("not vertically centered: gaps %d / %d", topGap, bottomGap)
			}

			// Uniform scale: both dimensions shrink by the same factor.
			wantW := int(float64(tt.content.Width)*scale + 0.5)
			if fitted.Width < wantW-1 || fitted.Width > wantW+1 {
				t.Fatalf("width %d does not match scale %v of %d", fitted.Width, scale, tt.content.Width)
			}
		})
	}
}

func TestFitWithin_EmptyInputs(t *testing.T) {
	if fitted, scale := FitWithin(geometry.Size{}, geometry.Rect{Width: 10, Height: 10}); !fitted.IsEmpty() || scale != 0 {
		t.Fatalf("expected empty fit for empty content")
	}
	if fitted, scale := FitWithin(geometry.Size{Width: 10, Height: 10}, geometry.Rect{}); !fitted.IsEmpty() || scale != 0 {
		t.Fatalf("expected empty fit for empty cell")
	}
}

func TestOverviewRect(t *testing.T) {
	geo := geometry.Rect{Width: 1920, Height: 1080}

	r0 := OverviewRect(geo, 200, 0)
	want0 := geometry.Rect{X: 200, Y: 200, Width: 1520, Height: 680}
	if r0 != want0 {
		t.Fatalf("index 0 = %+v, want %+v", r0, want0)
	}

	r1 := OverviewRect(geo, 200, 1)
	if r1.X != 1720 {
		t.Fatalf("index 1 X = %d, want 1720", r1.X)
	}

	r2 := OverviewRect(geo, 200, 2)
	if r2.X != 3240 {
		t.Fatalf("index 2 X = %d, want 3240", r2.X)
	}
}
