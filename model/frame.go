package model

import (
	"fmt"
	"strings"
)

const (
	WallGlyph  = '#'
	HeadGlyph  = 'O'
	BodyGlyph  = 'o'
	FoodGlyph  = '*'
	BlankGlyph = ' '

	ControlsHint = "Use arrow keys to move, 'q' to quit"
)

// Frame is a character grid ready to be drawn
type Frame struct {
	width  int
	height int
	cells  [][]rune
}

// NewFrame creates a blank frame with the specified dimensions
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Reset(width, height)
	return f
}

// Width returns the width of the frame
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame
func (f *Frame) Height() int {
	return f.height
}

// Reset resizes the frame and blanks every cell
func (f *Frame) Reset(width, height int) {
	f.width = width
	f.height = height

	// Resize cells if needed
	if len(f.cells) != height {
		f.cells = make([][]rune, height)
	}
	for i := range f.cells {
		if len(f.cells[i]) != width {
			f.cells[i] = make([]rune, width)
		}
	}
	f.Clear()
}

// Clear blanks every cell
func (f *Frame) Clear() {
	for y := range f.height {
		for x := range f.width {
			f.cells[y][x] = BlankGlyph
		}
	}
}

// Set writes a glyph; out of range writes are ignored
func (f *Frame) Set(x, y int, glyph rune) {
	if x >= 0 && x < f.width && y >= 0 && y < f.height {
		f.cells[y][x] = glyph
	}
}

// Get returns the glyph at (x, y), blank when out of range
func (f *Frame) Get(x, y int) rune {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return BlankGlyph
	}
	return f.cells[y][x]
}

// String returns the frame rows separated by newlines
func (f *Frame) String() string {
	var b strings.Builder
	for y := range f.height {
		b.WriteString(string(f.cells[y]))
		b.WriteByte('\n')
	}
	return b.String()
}

// ScoreLine is the status line printed under the board
func ScoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Compose draws a snapshot into f, resizing it to the snapshot grid
func Compose(s Snapshot, f *Frame) {
	var (
		width  = s.Grid.Width()
		height = s.Grid.Height()
	)
	f.Reset(width, height)

	for x := range width {
		f.Set(x, 0, WallGlyph)
		f.Set(x, height-1, WallGlyph)
	}
	for y := range height {
		f.Set(0, y, WallGlyph)
		f.Set(width-1, y, WallGlyph)
	}

	f.Set(int(s.Food.X), int(s.Food.Y), FoodGlyph)
	for i, p := range s.Snake {
		glyph := BodyGlyph
		if i == 0 {
			glyph = HeadGlyph
		}
		f.Set(int(p.X), int(p.Y), glyph)
	}
}
