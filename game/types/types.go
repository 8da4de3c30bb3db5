package types

import "fmt"

// Grid represents the game grid dimensions. The grid is toroidal: movement
// off one edge wraps to the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// Validate rejects degenerate dimensions. Called once at startup.
func (g Grid) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", g.Width, g.Height)
	}
	return nil
}

// Position is a cell on the grid. All movement goes through the wrapping
// helpers, so 0 <= X < Width and 0 <= Y < Height hold by construction.
type Position struct {
	X, Y int
}

func wrappingInc(n, limit int) int {
	if n == limit-1 {
		return 0
	}
	return n + 1
}

func wrappingDec(n, limit int) int {
	if n == 0 {
		return limit - 1
	}
	return n - 1
}

func (p Position) Up(g Grid) Position {
	return Position{X: p.X, Y: wrappingDec(p.Y, g.Height)}
}

func (p Position) Down(g Grid) Position {
	return Position{X: p.X, Y: wrappingInc(p.Y, g.Height)}
}

func (p Position) Left(g Grid) Position {
	return Position{X: wrappingDec(p.X, g.Width), Y: p.Y}
}

func (p Position) Right(g Grid) Position {
	return Position{X: wrappingInc(p.X, g.Width), Y: p.Y}
}

// Move returns the position shifted one cell in d. None leaves it unchanged.
func (p Position) Move(d Direction, g Grid) Position {
	switch d {
	case Up:
		return p.Up(g)
	case Down:
		return p.Down(g)
	case Left:
		return p.Left(g)
	case Right:
		return p.Right(g)
	}
	return p
}

// Direction is a facing on the grid. The zero value is None.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite maps each axis pair onto the other; None maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
