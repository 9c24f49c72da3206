package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// statusLines is the number of text rows drawn below the board
const statusLines = 2

// ErrScreenTooSmall is returned when the terminal cannot hold the board and its status lines
var ErrScreenTooSmall = errors.New("screen too small for the board")

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	pool   *FramePool
	style  tcell.Style
}

// NewTerminalRenderer creates a renderer; pool may be nil
func NewTerminalRenderer(screen tcell.Screen, pool *FramePool) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		pool:   pool,
		style:  tcell.StyleDefault,
	}
}

// Render draws the board, the score line and the controls hint
func (r *TerminalRenderer) Render(s Snapshot) error {
	var (
		width, height = r.screen.Size()
		needW         = s.Grid.Width()
		needH         = s.Grid.Height() + statusLines
	)
	if width < needW || height < needH {
		return errors.Wrapf(ErrScreenTooSmall, "[Render] have %dx%d, need %dx%d", width, height, needW, needH)
	}

	frame := r.frame(needW, s.Grid.Height())
	defer FrameToPool(frame, r.pool)
	Compose(s, frame)

	r.screen.Clear()
	for y := range frame.Height() {
		for x := range frame.Width() {
			r.screen.SetContent(x, y, frame.Get(x, y), nil, r.style)
		}
	}
	r.drawText(0, frame.Height(), ScoreLine(s.Score))
	r.drawText(0, frame.Height()+1, ControlsHint)
	r.screen.Show()

	return nil
}

func (r *TerminalRenderer) frame(width, height int) *Frame {
	if r.pool != nil {
		return r.pool.Get(width, height)
	}
	return NewFrame(width, height)
}

func (r *TerminalRenderer) drawText(x, y int, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, r.style)
	}
}
