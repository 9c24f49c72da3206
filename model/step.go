package model

import (
	"time"

	"github.com/sheikhrachel/go-snake/rules"
)

// Step advances the game by one tick at time now
func (g *Game) Step(now time.Time) rules.Outcome {
	if g.terminal {
		return rules.OutcomeIdle
	}

	g.direction = g.nextDirection
	g.lastUpdate = now

	x, y := g.grid.Next(g.snake.Head(), g.direction)
	hitWall := rules.IsWall(x, y, g.grid.Width(), g.grid.Height())

	var (
		head    Position
		hitSelf bool
		ate     bool
	)
	if !hitWall {
		head = Position{X: uint16(x), Y: uint16(y)}
		// checked against the body before the tail moves, so the tail cell is fatal too
		hitSelf = g.snake.Contains(head)
		ate = head == g.food
	}

	outcome := rules.ApplySnakeRules(hitWall, hitSelf, ate)
	switch outcome {
	case rules.OutcomeHitWall, rules.OutcomeHitSelf:
		g.terminal = true
	case rules.OutcomeAte:
		g.snake.PushHead(head)
		g.score++
		g.food = g.spawner.Spawn(g.grid, g.snake)
	case rules.OutcomeMoved:
		g.snake.PushHead(head)
		g.snake.PopTail()
	}

	return outcome
}
