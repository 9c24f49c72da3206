package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want Key
	}{
		{name: "arrow up", key: tcell.KeyUp, want: KeyUp},
		{name: "arrow down", key: tcell.KeyDown, want: KeyDown},
		{name: "arrow left", key: tcell.KeyLeft, want: KeyLeft},
		{name: "arrow right", key: tcell.KeyRight, want: KeyRight},
		{name: "q", key: tcell.KeyRune, ch: 'q', want: KeyQuit},
		{name: "Q", key: tcell.KeyRune, ch: 'Q', want: KeyQuit},
		{name: "escape", key: tcell.KeyEscape, want: KeyQuit},
		{name: "ctrl c", key: tcell.KeyCtrlC, want: KeyQuit},
		{name: "w", key: tcell.KeyRune, ch: 'w', want: KeyUp},
		{name: "a", key: tcell.KeyRune, ch: 'a', want: KeyLeft},
		{name: "s", key: tcell.KeyRune, ch: 's', want: KeyDown},
		{name: "d", key: tcell.KeyRune, ch: 'd', want: KeyRight},
		{name: "other rune", key: tcell.KeyRune, ch: 'x', want: KeyOther},
		{name: "enter", key: tcell.KeyEnter, want: KeyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
			if got := ClassifyKey(ev); got != tt.want {
				t.Errorf("ClassifyKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKey_Direction(t *testing.T) {
	if d, ok := KeyLeft.Direction(); !ok || d != DirectionLeft {
		t.Errorf("KeyLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := KeyQuit.Direction(); ok {
		t.Error("KeyQuit.Direction() ok = true, want false")
	}
	if _, ok := KeyOther.Direction(); ok {
		t.Error("KeyOther.Direction() ok = true, want false")
	}
}

func TestKeyReader_PumpAndPoll(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	var (
		ctx    = context.Background()
		reader = NewKeyReader(screen)
		done   = make(chan error, 1)
	)
	go func() { done <- reader.Pump(ctx) }()

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	key, ok, err := reader.Poll(ctx, time.Second)
	if err != nil || !ok || key != KeyUp {
		t.Fatalf("Poll() = %v, %v, %v, want up", key, ok, err)
	}
	key, ok, err = reader.Poll(ctx, time.Second)
	if err != nil || !ok || key != KeyQuit {
		t.Fatalf("Poll() = %v, %v, %v, want quit", key, ok, err)
	}

	// nothing queued: bounded wait
	key, ok, err = reader.Poll(ctx, 10*time.Millisecond)
	if err != nil || ok {
		t.Fatalf("Poll() on empty queue = %v, %v, %v, want timeout", key, ok, err)
	}

	screen.Fini()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Pump() error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Pump() did not return after Fini")
	}

	if _, _, err := reader.Poll(ctx, time.Second); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Poll() after pump stopped error = %v, want ErrInputClosed", err)
	}
}

func TestKeyReader_PollCancelled(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	reader := NewKeyReader(screen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	key, ok, err := reader.Poll(ctx, time.Minute)
	if err != nil || ok || key != KeyOther {
		t.Errorf("Poll() on cancelled ctx = %v, %v, %v", key, ok, err)
	}
}
