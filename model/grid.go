package model

import (
	"fmt"

	"github.com/sheikhrachel/go-snake/rules"
)

const (
	BoardWidth  = 40
	BoardHeight = 20

	minGridSide = 3
)

// Grid is the fixed playing field. Its outermost ring of cells is wall.
type Grid struct {
	width  uint16
	height uint16
}

// NewGrid creates a grid with the specified dimensions
func NewGrid(width, height uint16) Grid {
	if width < minGridSide || height < minGridSide {
		panic(fmt.Sprintf("model: grid %dx%d has no interior", width, height))
	}
	return Grid{width: width, height: height}
}

// DefaultGrid returns the 40x20 board the game is played on
func DefaultGrid() Grid {
	return NewGrid(BoardWidth, BoardHeight)
}

// Width returns the width of the grid, walls included
func (g Grid) Width() int {
	return int(g.width)
}

// Height returns the height of the grid, walls included
func (g Grid) Height() int {
	return int(g.height)
}

// Center returns the middle cell, where a new snake starts
func (g Grid) Center() Position {
	return Position{X: g.width / 2, Y: g.height / 2}
}

// IsWall reports whether p lies on or beyond the border ring
func (g Grid) IsWall(p Position) bool {
	return rules.IsWall(int(p.X), int(p.Y), g.Width(), g.Height())
}

// InInterior reports whether p is a playable cell
func (g Grid) InInterior(p Position) bool {
	return !g.IsWall(p)
}

// InteriorCells returns the number of playable cells
func (g Grid) InteriorCells() int {
	return (g.Width() - 2) * (g.Height() - 2)
}

// Next returns the coordinates one step from p in direction d.
// The result is signed so that a step off row or column 0 stays negative instead of wrapping.
func (g Grid) Next(p Position, d Direction) (x, y int) {
	dx, dy := d.Delta()
	return int(p.X) + dx, int(p.Y) + dy
}
