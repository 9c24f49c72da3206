// Package session drives a game in real time: it polls input, paces ticks and renders.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-snake/model"
	"github.com/sheikhrachel/go-snake/rules"
	"github.com/sheikhrachel/go-snake/utils"
)

//go:generate go tool mockgen -destination=./mocks/session_mock.go -package=mocks . Renderer,InputSource

// Renderer draws a snapshot of the game
type Renderer interface {
	Render(snapshot model.Snapshot) error
}

// InputSource yields classified key presses
type InputSource interface {
	// Poll waits at most timeout for a key. ok is false when none arrived.
	Poll(ctx context.Context, timeout time.Duration) (key model.Key, ok bool, err error)
}

// Config wires a session to its collaborators
type Config struct {
	Renderer     Renderer
	Input        InputSource
	TickInterval time.Duration
	PollInterval time.Duration
	Now          func() time.Time
	Logger       *slog.Logger
	ID           uuid.UUID
}

// Result is the final report of a finished session
type Result struct {
	ID      uuid.UUID
	Score   int
	Outcome rules.Outcome // last tick outcome; idle when the player quit before dying
	Quit    bool
	Stats   utils.Stats
}

// Session runs a single game until it ends
type Session struct {
	game         *model.Game
	renderer     Renderer
	input        InputSource
	tickInterval time.Duration
	pollInterval time.Duration
	now          func() time.Time
	logger       *slog.Logger
	id           uuid.UUID

	stats   *utils.Stats
	outcome rules.Outcome
	quit    bool
}

// New creates a session for game
func New(game *model.Game, cfg Config) (*Session, error) {
	if game == nil {
		return nil, errors.New("session: game is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("session: renderer is required")
	}
	if cfg.Input == nil {
		return nil, errors.New("session: input is required")
	}
	if cfg.TickInterval <= 0 || cfg.PollInterval <= 0 {
		return nil, errors.Errorf("session: intervals must be positive, got tick %v poll %v",
			cfg.TickInterval, cfg.PollInterval)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Session{
		game:         game,
		renderer:     cfg.Renderer,
		input:        cfg.Input,
		tickInterval: cfg.TickInterval,
		pollInterval: cfg.PollInterval,
		now:          now,
		logger:       logger.With("session", id.String()),
		id:           id,
		stats:        utils.NewStats(now()),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run plays until the game ends, the player quits or ctx is cancelled.
// Renderer and input failures end the session and are returned.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.logger.InfoContext(ctx, "session started",
		"width", s.game.Grid().Width(),
		"height", s.game.Grid().Height(),
		"tick", s.tickInterval,
		"poll", s.pollInterval)

	if err := s.render(); err != nil {
		return s.result(), err
	}

	for !s.game.IsTerminal() {
		if ctx.Err() != nil {
			s.logger.InfoContext(ctx, "context cancelled, quitting", "err", ctx.Err())
			s.requestQuit()
			break
		}

		key, ok, err := s.input.Poll(ctx, s.pollInterval)
		if err != nil {
			return s.result(), errors.Wrap(err, "[Session.Run] failed to poll input")
		}
		if ok {
			s.handleKey(ctx, key)
		}
		if s.game.IsTerminal() {
			break
		}

		now := s.now()
		if !s.game.Due(now, s.tickInterval) {
			continue
		}
		if err := s.tick(ctx, now); err != nil {
			return s.result(), err
		}
	}

	// final frame shows the state the game ended in
	if err := s.render(); err != nil {
		return s.result(), err
	}

	result := s.result()
	s.logger.InfoContext(ctx, "session finished",
		"score", result.Score,
		"outcome", result.Outcome.String(),
		"quit", result.Quit,
		"ticks", result.Stats.TotalTicks,
		"max_length", result.Stats.MaxLength,
		"runtime", result.Stats.Runtime(s.now()))
	return result, nil
}

func (s *Session) handleKey(ctx context.Context, key model.Key) {
	if key == model.KeyQuit {
		s.requestQuit()
		return
	}
	if d, ok := key.Direction(); ok {
		s.logger.DebugContext(ctx, "direction requested", "direction", d.String())
		s.game.RequestDirection(d)
	}
}

func (s *Session) requestQuit() {
	s.quit = true
	s.game.RequestQuit()
}

func (s *Session) tick(ctx context.Context, now time.Time) error {
	elapsed := now.Sub(s.game.LastUpdate())
	s.outcome = s.game.Step(now)

	snapshot := s.game.Snapshot()
	s.stats.Update(len(snapshot.Snake), s.outcome == rules.OutcomeAte, elapsed)

	switch {
	case s.outcome == rules.OutcomeAte:
		s.logger.DebugContext(ctx, "food eaten", "score", snapshot.Score, "food", snapshot.Food.String())
	case s.outcome.Fatal():
		s.logger.InfoContext(ctx, "snake died", "outcome", s.outcome.String(), "head", snapshot.Snake[0].String())
	}

	return s.render()
}

func (s *Session) render() error {
	if err := s.renderer.Render(s.game.Snapshot()); err != nil {
		return errors.Wrap(err, "[Session.render] failed to render")
	}
	return nil
}

func (s *Session) result() Result {
	return Result{
		ID:      s.id,
		Score:   s.game.Score(),
		Outcome: s.outcome,
		Quit:    s.quit,
		Stats:   *s.stats,
	}
}
