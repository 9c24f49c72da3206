package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-snake/model"
	"github.com/sheikhrachel/go-snake/session"
	"github.com/sheikhrachel/go-snake/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, now time.Time) (*model.Game, *model.FramePool) {
	seed := config.RandomSeed(now)
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	game := model.NewGame(model.DefaultGrid(), rng, now)
	pool := model.NewFramePool()

	return game, pool
}

// newScreen puts the terminal into raw mode and hides the cursor
func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[newScreen] failed to init screen")
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// playSession runs the game loop and the terminal event pump side by side.
// The screen is finalized when the loop ends, which also stops the pump.
func playSession(
	ctx context.Context,
	config utils.Config,
	logger *slog.Logger,
	screen tcell.Screen,
) (session.Result, error) {
	var (
		game, pool = initializeGame(config, time.Now())
		keys       = model.NewKeyReader(screen)
		id         = uuid.New()
	)

	sess, err := session.New(game, session.Config{
		Renderer:     model.NewTerminalRenderer(screen, pool),
		Input:        keys,
		TickInterval: config.TickInterval,
		PollInterval: config.PollInterval,
		Logger:       logger,
		ID:           id,
	})
	if err != nil {
		screen.Fini()
		return session.Result{ID: id}, errors.Wrap(err, "[playSession] failed to create session")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		result    session.Result
	)
	eg.Go(func() error {
		defer screen.Fini()
		defer cancel()

		var err error
		result, err = sess.Run(egCtx)
		return err
	})
	eg.Go(func() error {
		return keys.Pump(egCtx)
	})

	if err := eg.Wait(); err != nil {
		return result, err
	}
	return result, nil
}

// reportResult prints the final score once the terminal is restored
func reportResult(result session.Result) {
	fmt.Printf("\nGame Over! Final score: %d\n", result.Score)
}
