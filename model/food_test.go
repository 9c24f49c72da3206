package model

import (
	"math/rand/v2"
	"testing"

	"pgregory.net/rapid"
)

func TestFoodSpawner_OnlyFreeCell(t *testing.T) {
	// 5x4 grid has a 3x2 interior; the snake covers all but (3,2)
	grid := NewGrid(5, 4)
	snake := NewSnake(Pos(1, 1), Pos(2, 1), Pos(3, 1), Pos(1, 2), Pos(2, 2))

	spawner := NewFoodSpawner(newTestRand())
	for range 20 {
		if got := spawner.Spawn(grid, snake); got != Pos(3, 2) {
			t.Fatalf("Spawn() = %v, want (3,2)", got)
		}
	}
}

func TestFoodSpawner_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			width  = rapid.Uint16Range(3, 40).Draw(t, "width")
			height = rapid.Uint16Range(3, 20).Draw(t, "height")
			grid   = NewGrid(width, height)
			seed   = rapid.Uint64().Draw(t, "seed")
		)

		// any set of distinct interior cells that leaves at least one free
		var interior []Position
		for y := uint16(1); y < height-1; y++ {
			for x := uint16(1); x < width-1; x++ {
				interior = append(interior, Pos(x, y))
			}
		}
		n := rapid.IntRange(1, len(interior)).Draw(t, "free")
		perm := rand.New(rand.NewPCG(seed, 7)).Perm(len(interior))
		var body []Position
		for _, i := range perm[:len(interior)-n] {
			body = append(body, interior[i])
		}
		if len(body) == 0 {
			body = append(body, interior[perm[0]])
			if len(interior) == 1 {
				return
			}
		}
		snake := NewSnake(body[0], body[1:]...)

		food := NewFoodSpawner(rand.New(rand.NewPCG(seed, seed))).Spawn(grid, snake)
		if !grid.InInterior(food) {
			t.Fatalf("food %v outside the interior of %dx%d", food, width, height)
		}
		if snake.Contains(food) {
			t.Fatalf("food %v on the snake", food)
		}
	})
}
