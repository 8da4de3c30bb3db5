package entity

import (
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// Health is the snake's death ladder. A collision while Alive leaves one
// grace tick in Dying before a further collision locks in Dead.
type Health int

const (
	Alive Health = iota
	Dying
	Dead
)

// Worsen advances the ladder one step. Dead is terminal.
func (h Health) Worsen() Health {
	if h == Alive {
		return Dying
	}
	return Dead
}

// Snake is an ordered body of grid cells, head at index 0, tail at the end.
// Moves push the new head to the front and pop the tail unless the snake
// just ate.
type Snake struct {
	grid        types.Grid
	body        []types.Position
	direction   types.Direction
	health      Health
	needsToGrow bool
}

// NewSnake places a length-1 snake at the grid center, facing nowhere.
func NewSnake(grid types.Grid) *Snake {
	return &Snake{
		grid:      grid,
		body:      []types.Position{{X: grid.Width / 2, Y: grid.Height / 2}},
		direction: types.None,
		health:    Alive,
	}
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the front cell. An empty body is an invariant violation, not
// a reachable state.
func (s *Snake) Head() types.Position {
	if len(s.body) == 0 {
		panic("snake body is empty")
	}
	return s.body[0]
}

// Body exposes the cells front to back for drawing.
func (s *Snake) Body() []types.Position {
	return s.body
}

func (s *Snake) Health() Health {
	return s.health
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection records a facing without any acceptance checks; those live
// in the input resolver.
func (s *Snake) SetDirection(d types.Direction) {
	s.direction = d
}

// NextHead returns the head moved one cell in d, with wrap.
func (s *Snake) NextHead(d types.Direction) types.Position {
	return s.Head().Move(d, s.grid)
}

// WillCollide reports whether candidate overlaps the body, ignoring the
// current head and the current tail. The tail cell is exempt because it
// vacates on a non-growing move, so entering it on the same tick is safe.
func (s *Snake) WillCollide(candidate types.Position) bool {
	for i := 1; i < len(s.body)-1; i++ {
		if s.body[i] == candidate {
			return true
		}
	}
	return false
}

// Contains scans the full body, head and tail included.
func (s *Snake) Contains(pos types.Position) bool {
	for _, p := range s.body {
		if p == pos {
			return true
		}
	}
	return false
}

// Tick advances the snake one simulation step. A colliding move does not
// move the body; it worsens health instead, which is the grace tick. Eating
// the apple relocates it in place by rejection sampling over the grid.
func (s *Snake) Tick(apple *types.Position, rng *rand.Rand) {
	if s.health == Dead {
		return
	}
	if s.direction == types.None {
		return
	}

	newHead := s.NextHead(s.direction)
	if s.WillCollide(newHead) {
		s.health = s.health.Worsen()
		return
	}

	s.health = Alive
	s.body = append([]types.Position{newHead}, s.body...)

	if s.Contains(*apple) {
		s.needsToGrow = true
		for s.Contains(*apple) {
			*apple = types.Position{
				X: rng.Intn(s.grid.Width),
				Y: rng.Intn(s.grid.Height),
			}
		}
	}

	if s.health != Dead && !s.needsToGrow {
		s.body = s.body[:len(s.body)-1]
	}
	s.needsToGrow = false
}
