package model

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Key is a classified key press
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// keyBuffer bounds how many presses can queue up between polls
const keyBuffer = 16

// ErrInputClosed is returned by Poll once the event pump has stopped
var ErrInputClosed = errors.New("input closed")

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	}
	return "other"
}

// Direction maps a directional key to its heading
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirectionUp, true
	case KeyDown:
		return DirectionDown, true
	case KeyLeft:
		return DirectionLeft, true
	case KeyRight:
		return DirectionRight, true
	}
	return 0, false
}

// ClassifyKey maps a terminal key event to a game key
func ClassifyKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return KeyQuit
		case 'w', 'W':
			return KeyUp
		case 's', 'S':
			return KeyDown
		case 'a', 'A':
			return KeyLeft
		case 'd', 'D':
			return KeyRight
		}
	}
	return KeyOther
}

// KeyReader turns tcell events into game keys
type KeyReader struct {
	screen tcell.Screen
	keys   chan Key
}

// NewKeyReader creates a reader for the given screen
func NewKeyReader(screen tcell.Screen) *KeyReader {
	return &KeyReader{
		screen: screen,
		keys:   make(chan Key, keyBuffer),
	}
}

// Pump forwards key events until the screen is finalized or ctx is done.
// It blocks inside tcell, so callers stop it by finalizing the screen.
func (r *KeyReader) Pump(ctx context.Context) error {
	defer close(r.keys)

	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventError:
			return errors.Wrap(ev, "[KeyReader.Pump] terminal event error")
		case *tcell.EventKey:
			select {
			case r.keys <- ClassifyKey(ev):
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Poll waits at most timeout for the next key
func (r *KeyReader) Poll(ctx context.Context, timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case key, ok := <-r.keys:
		if !ok {
			return KeyOther, false, ErrInputClosed
		}
		return key, true, nil
	case <-timer.C:
		return KeyOther, false, nil
	case <-ctx.Done():
		return KeyOther, false, nil
	}
}
