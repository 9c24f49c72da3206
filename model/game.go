package model

import (
	"math/rand/v2"
	"time"
)

// Game owns the whole state of one session and every mutation of it
type Game struct {
	grid    Grid
	snake   *Snake
	food    Position
	spawner *FoodSpawner

	direction     Direction
	nextDirection Direction // applied at the start of the next tick

	score      int
	terminal   bool
	lastUpdate time.Time
}

// Snapshot is a read-only copy of what a renderer needs
type Snapshot struct {
	Grid      Grid
	Snake     []Position // head first
	Food      Position
	Score     int
	Direction Direction
	Terminal  bool
}

// NewGame starts a session: one segment in the middle of the grid, heading right
func NewGame(grid Grid, rng *rand.Rand, now time.Time) *Game {
	g := &Game{
		grid:          grid,
		snake:         NewSnake(grid.Center()),
		spawner:       NewFoodSpawner(rng),
		direction:     DirectionRight,
		nextDirection: DirectionRight,
		lastUpdate:    now,
	}
	g.food = g.spawner.Spawn(g.grid, g.snake)
	return g
}

// RequestDirection buffers d for the next tick.
// A request pointing straight back along the current heading is dropped.
func (g *Game) RequestDirection(d Direction) {
	if !d.Valid() || d == g.direction.Opposite() {
		return
	}
	g.nextDirection = d
}

// RequestQuit ends the game immediately
func (g *Game) RequestQuit() {
	g.terminal = true
}

// IsTerminal reports whether the game is over
func (g *Game) IsTerminal() bool {
	return g.terminal
}

// Score returns the number of food items eaten
func (g *Game) Score() int {
	return g.score
}

// Direction returns the heading used by the last tick
func (g *Game) Direction() Direction {
	return g.direction
}

// LastUpdate returns the time of the last tick
func (g *Game) LastUpdate() time.Time {
	return g.lastUpdate
}

// Due reports whether interval has elapsed since the last tick
func (g *Game) Due(now time.Time, interval time.Duration) bool {
	return now.Sub(g.lastUpdate) >= interval
}

// Grid returns the board the game is played on
func (g *Game) Grid() Grid {
	return g.grid
}

// Snapshot copies the state for rendering
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.grid,
		Snake:     g.snake.Cells(),
		Food:      g.food,
		Score:     g.score,
		Direction: g.direction,
		Terminal:  g.terminal,
	}
}
