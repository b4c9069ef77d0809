package session

import (
	"image"

	"github.com/zucenko/colormatch/model"
)

// Viewer is the read-only side of a session the renderer needs.
type Viewer interface {
	Rows() int
	Cols() int
	ShouldReveal(row, col int) bool
	ColorAt(row, col int) model.Color
}

// Tile is one cell placed on screen.
type Tile struct {
	Row, Col int
	Bounds   image.Rectangle
	Revealed bool
	Color    model.Color
}

// Layout places every cell of v on a width x height canvas. Color is set only
// for revealed tiles.
func Layout(v Viewer, width, height int) []Tile {
	rows, cols := v.Rows(), v.Cols()
	cellWidth := width / cols
	cellHeight := height / rows
	tiles := make([]Tile, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := Tile{
				Row:    r,
				Col:    c,
				Bounds: image.Rect(c*cellWidth, r*cellHeight, (c+1)*cellWidth, (r+1)*cellHeight),
			}
			if v.ShouldReveal(r, c) {
				t.Revealed = true
				t.Color = v.ColorAt(r, c)
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// PixelToCell maps a window position to a cell. Positions outside the window
// are rejected, the leftover strip past the last full cell is clamped.
func PixelToCell(x, y, width, height, rows, cols int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	cellWidth := width / cols
	cellHeight := height / rows
	if cellWidth == 0 || cellHeight == 0 {
		return 0, 0, false
	}
	row = y / cellHeight
	col = x / cellWidth
	if row >= rows {
		row = rows - 1
	}
	if col >= cols {
		col = cols - 1
	}
	return row, col, true
}
