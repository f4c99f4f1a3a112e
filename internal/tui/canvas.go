package tui

import (
	"fmt"
	"strings"

	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/shell"
)

// renderCanvas draws the composed element list as ASCII boxes on a character
// canvas mapped from the output's logical space. Elements are drawn in paint
// order so later (upper) elements overwrite earlier ones, same as a painter
// pass would.
func renderCanvas(elements []shell.Element, outGeo geometry.Rect, width, height int) []string {
	if width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, el := range elements {
		switch el.Kind {
		case shell.ElementSurface, shell.ElementPreview:
			drawElement(canvas, el, outGeo, width, height)
		}
	}

	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

func drawElement(canvas [][]rune, el shell.Element, outGeo geometry.Rect, canvasW, canvasH int) {
	if outGeo.Width < 1 || outGeo.Height < 1 {
		return
	}

	// Map output-logical coordinates to canvas cells.
	x1 := (el.Geometry.X - outGeo.X) * canvasW / outGeo.Width
	y1 := (el.Geometry.Y - outGeo.Y) * canvasH / outGeo.Height
	x2 := (el.Geometry.X - outGeo.X + el.Geometry.Width) * canvasW / outGeo.Width
	y2 := (el.Geometry.Y - outGeo.Y + el.Geometry.Height) * canvasH / outGeo.Height

	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= canvasW-1 {
		x2 = canvasW - 2
	}
	if y2 >= canvasH-1 {
		y2 = canvasH - 2
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	// Previews draw with a lighter border so they read as thumbnails.
	h, v := '─', '│'
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if el.Kind == shell.ElementPreview {
		h, v = '╌', '╎'
	}

	// Clear the interior so the element visually occludes what is below.
	for y := y1 + 1; y < y2; y++ {
		for x := x1 + 1; x < x2; x++ {
			canvas[y][x] = ' '
		}
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = h
		canvas[y2][x] = h
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = v
		canvas[y][x2] = v
	}
	canvas[y1][x1] = tl
	canvas[y1][x2] = tr
	canvas[y2][x1] = bl
	canvas[y2][x2] = br

	// Window id in the center.
	label := fmt.Sprintf("%d", el.Source)
	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	startX := centerX - len(label)/2
	for i, r := range label {
		if startX+i > x1 && startX+i < x2 {
			canvas[centerY][startX+i] = r
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if width < 0 {
		width = 0
	}
	lines := make([]string, height)
	empty := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = empty
	}
	return lines
}
