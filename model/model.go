package model

import "image/color"

// Color is an opaque RGB tile color.
type Color struct {
	R, G, B uint8
}

// RGBA converts the tile color for drawing.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// F64 returns the channels scaled to [0,1] for ColorM tinting.
func (c Color) F64() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

type Coord struct {
	Row, Col int
}

type Cell struct {
	Row, Col int
	Color    Color
	Matched  bool
}

// Board is a fixed grid of cells. Colors never change after construction,
// only the matched flags do.
type Board struct {
	Matrix     [][]*Cell
	Rows, Cols int
}
