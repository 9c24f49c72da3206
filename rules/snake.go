package rules

// Outcome is what a single tick did to the game
type Outcome int

const (
	// OutcomeIdle means the tick was skipped because the game had already ended
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit wall"
	case OutcomeHitSelf:
		return "hit self"
	}
	return "unknown"
}

// Fatal reports whether the outcome ends the game
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

/*
ApplySnakeRules resolves a tick once the next head cell has been checked.

Snake rules, in order: a wall hit ends the game, then a body hit ends the game,
then landing on food grows the snake, otherwise the snake moves one cell.
*/
func ApplySnakeRules(hitWall, hitSelf, ate bool) Outcome {
	switch {
	case hitWall:
		return OutcomeHitWall
	case hitSelf:
		return OutcomeHitSelf
	case ate:
		return OutcomeAte
	}
	return OutcomeMoved
}

// IsWall reports whether (x, y) touches or crosses the border ring of a width x height board
func IsWall(x, y, width, height int) bool {
	return x <= 0 || y <= 0 || x >= width-1 || y >= height-1
}
