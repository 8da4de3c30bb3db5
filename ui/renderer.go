package ui

import (
	"fmt"

	"snek/game"
	"snek/game/entity"
	"snek/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridLineThickness = 2
	overlayFontSize   = 30
	overlayPadding    = 10
	overlayLineStep   = 35
)

var (
	bodyEven   = rl.NewColor(0, 153, 48, 255)
	bodyOdd    = rl.NewColor(0, 128, 48, 255)
	overlayDim = rl.NewColor(77, 77, 77, 178)
)

// Renderer maps grid cells onto the window. The whole window is the board;
// cell size is recomputed every frame so resizing just works.
type Renderer struct {
	screenWidth  float32
	screenHeight float32
	cellWidth    float32
	cellHeight   float32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) updateDimensions(grid types.Grid) {
	r.screenWidth = float32(rl.GetScreenWidth())
	r.screenHeight = float32(rl.GetScreenHeight())
	r.cellWidth = r.screenWidth / float32(grid.Width)
	r.cellHeight = r.screenHeight / float32(grid.Height)
}

// Draw renders one frame. EndDrawing presents it and yields to the window
// layer, which also polls the next frame's input there.
func (r *Renderer) Draw(g *game.Game) {
	r.updateDimensions(g.Grid())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	snake := g.Snake()
	body := snake.Body()
	r.drawCell(body[0], rl.Green)
	for i, p := range body[1:] {
		if i%2 == 0 {
			r.drawCell(p, bodyEven)
		} else {
			r.drawCell(p, bodyOdd)
		}
	}
	r.drawCell(g.Apple(), rl.Red)

	r.drawGridLines(g.Grid())

	if snake.Health() == entity.Dead {
		r.drawDeathOverlay(snake.Len())
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Position, color rl.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(
		float32(p.X)*r.cellWidth,
		float32(p.Y)*r.cellHeight,
		r.cellWidth,
		r.cellHeight,
	), color)
}

func (r *Renderer) drawGridLines(grid types.Grid) {
	for x := 0; x < grid.Width; x++ {
		sx := float32(x) * r.cellWidth
		rl.DrawLineEx(
			rl.NewVector2(sx, 0),
			rl.NewVector2(sx, r.screenHeight),
			gridLineThickness, rl.DarkGray)
	}
	for y := 0; y < grid.Height; y++ {
		sy := float32(y) * r.cellHeight
		rl.DrawLineEx(
			rl.NewVector2(0, sy),
			rl.NewVector2(r.screenWidth, sy),
			gridLineThickness, rl.DarkGray)
	}
}

func (r *Renderer) drawDeathOverlay(length int) {
	text := fmt.Sprintf("You died with a length of %d.", length)
	panelWidth := rl.MeasureText(text, overlayFontSize) + overlayPadding*2
	panelHeight := int32(overlayLineStep*3 + overlayPadding)
	rl.DrawRectangle(0, 0, panelWidth, panelHeight, overlayDim)

	rl.DrawText(text, overlayPadding, overlayPadding, overlayFontSize, rl.Orange)
	rl.DrawText("Press 'Q' to quit.", overlayPadding, overlayPadding+overlayLineStep, overlayFontSize, rl.Orange)
	rl.DrawText("Press 'R' to restart.", overlayPadding, overlayPadding+overlayLineStep*2, overlayFontSize, rl.Orange)
}
