package game

import (
	"time"

	"snek/game/entity"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// PollingRate is the fixed interval between simulation steps, in seconds.
// Rendering runs at whatever rate the window gives us; the simulation only
// advances on this cadence.
const PollingRate = 0.2

// Game owns one snake, one apple, and the random source that places it.
// Restart is a wholesale replacement: drop the game, construct a new one.
type Game struct {
	grid  types.Grid
	snake *entity.Snake
	apple types.Position
	rng   *rand.Rand
}

// New builds a fresh game: a length-1 snake at the grid center and an apple
// placed off the snake. Each game owns its own generator, so a restart
// reseeds implicitly.
func New(grid types.Grid) *Game {
	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	snake := entity.NewSnake(grid)

	// Seed the sample from the head so the rejection loop runs at least once.
	apple := snake.Head()
	for snake.Contains(apple) {
		apple = types.Position{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
	}

	return &Game{
		grid:  grid,
		snake: snake,
		apple: apple,
		rng:   rng,
	}
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Apple() types.Position {
	return g.apple
}

// Tick advances the simulation one discrete step.
func (g *Game) Tick() {
	g.snake.Tick(&g.apple, g.rng)
}
