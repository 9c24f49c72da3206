package model

import "fmt"

// Position is a board-relative cell. X grows to the right, Y grows downward.
type Position struct {
	X uint16
	Y uint16
}

// Pos is a convenience constructor for Position
func Pos(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// String returns the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
