package model

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfRange           = errors.New("cell out of range")
)

// RandomColors draws count colors uniformly from the whole RGB cube.
// Duplicates between draws are allowed.
func RandomColors(count int, rnd *rand.Rand) []Color {
	colors := make([]Color, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, Color{
			R: uint8(rnd.Intn(256)),
			G: uint8(rnd.Intn(256)),
			B: uint8(rnd.Intn(256)),
		})
	}
	return colors
}

// NewBoard builds a rows x cols board holding rows*cols/2 random color pairs
// in a uniformly shuffled order.
func NewBoard(rows, cols int, rnd *rand.Rand) (*Board, error) {
	if err := checkSize(rows, cols); err != nil {
		return nil, err
	}
	colors := RandomColors(rows*cols/2, rnd)
	colors = append(colors, colors...)
	rnd.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})

	grid := make([][]Color, 0, rows)
	for r := 0; r < rows; r++ {
		grid = append(grid, colors[r*cols:(r+1)*cols])
	}
	return NewBoardFromGrid(grid)
}

// NewBoardFromGrid builds a board with the given color layout, row-major.
func NewBoardFromGrid(grid [][]Color) (*Board, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	if err := checkSize(rows, cols); err != nil {
		return nil, err
	}

	matrix := make([][]*Cell, 0, rows)
	for r, line := range grid {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(line), cols, ErrInvalidConfiguration)
		}
		row := make([]*Cell, 0, cols)
		for c, color := range line {
			row = append(row, &Cell{Row: r, Col: c, Color: color})
		}
		matrix = append(matrix, row)
	}
	return &Board{Matrix: matrix, Rows: rows, Cols: cols}, nil
}

func checkSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidConfiguration)
	}
	if rows*cols%2 != 0 {
		return fmt.Errorf("%dx%d has an odd cell count: %w", rows, cols, ErrInvalidConfiguration)
	}
	return nil
}

func (b *Board) InRange(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// ColorAt panics on coordinates outside the board; callers check InRange.
func (b *Board) ColorAt(row, col int) Color {
	return b.Matrix[row][col].Color
}

func (b *Board) MarkMatched(row, col int) {
	b.Matrix[row][col].Matched = true
}

func (b *Board) IsMatched(row, col int) bool {
	return b.Matrix[row][col].Matched
}

func (b *Board) AllMatched() bool {
	for _, line := range b.Matrix {
		for _, cell := range line {
			if !cell.Matched {
				return false
			}
		}
	}
	return true
}
