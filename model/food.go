package model

import "math/rand/v2"

// FoodSpawner places food on free interior cells
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner drawing from rng
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Spawn picks a uniformly random interior cell not covered by the snake.
// It retries until it finds one, so it never returns while the snake fills the whole interior.
func (f *FoodSpawner) Spawn(g Grid, s *Snake) Position {
	for {
		food := Position{
			X: uint16(1 + f.rng.IntN(g.Width()-2)),
			Y: uint16(1 + f.rng.IntN(g.Height()-2)),
		}
		if !s.Contains(food) {
			return food
		}
	}
}
