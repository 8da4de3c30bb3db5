package game

import (
	"testing"

	"snek/game/types"
)

var testGrid = types.Grid{Width: 20, Height: 10}

// step forces one deterministic simulation step: direction d, with the
// apple planted on the next head cell when grow is set, or parked in a
// corner away from the action otherwise.
func step(g *Game, d types.Direction, grow bool) {
	g.snake.SetDirection(d)
	if grow {
		g.apple = g.snake.NextHead(d)
	} else {
		g.apple = types.Position{}
	}
	g.Tick()
}

func TestNewGame(t *testing.T) {
	g := New(testGrid)

	s := g.Snake()
	if s.Len() != 1 {
		t.Errorf("snake length = %d, want 1", s.Len())
	}
	if got := s.Head(); got != (types.Position{X: 10, Y: 5}) {
		t.Errorf("snake head = %v, want grid center {10 5}", got)
	}
	if s.Direction() != types.None {
		t.Errorf("snake direction = %v, want none", s.Direction())
	}
	if s.Contains(g.Apple()) {
		t.Errorf("apple %v placed on the snake", g.Apple())
	}
	a := g.Apple()
	if a.X < 0 || a.X >= testGrid.Width || a.Y < 0 || a.Y >= testGrid.Height {
		t.Errorf("apple %v outside the grid", a)
	}
}

func TestRestartReplacesEverything(t *testing.T) {
	g := New(testGrid)
	step(g, types.Right, true)
	if g.Snake().Len() != 2 {
		t.Fatalf("setup: snake length = %d, want 2", g.Snake().Len())
	}

	g = New(testGrid)
	if g.Snake().Len() != 1 {
		t.Errorf("restarted snake length = %d, want 1", g.Snake().Len())
	}
	if g.Snake().Direction() != types.None {
		t.Errorf("restarted snake direction = %v, want none", g.Snake().Direction())
	}
}

func TestTickEatMovesApple(t *testing.T) {
	g := New(testGrid)
	g.snake.SetDirection(types.Right)
	g.apple = types.Position{X: 11, Y: 5}

	g.Tick()

	if g.Snake().Len() != 2 {
		t.Errorf("snake length = %d after eating, want 2", g.Snake().Len())
	}
	if g.Snake().Contains(g.Apple()) {
		t.Errorf("relocated apple %v is on the snake", g.Apple())
	}
	if g.Apple() == (types.Position{X: 11, Y: 5}) {
		t.Error("apple did not move after being eaten")
	}
}

func TestTickWithoutAppleKeepsLength(t *testing.T) {
	g := New(testGrid)
	step(g, types.Right, false)
	if g.Snake().Len() != 1 {
		t.Errorf("snake length = %d, want 1", g.Snake().Len())
	}
	if got := g.Snake().Head(); got != (types.Position{X: 11, Y: 5}) {
		t.Errorf("snake head = %v, want {11 5}", got)
	}
}
