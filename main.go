package main

import (
	"log"

	"snek/game"
	"snek/game/types"
	"snek/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridWidth  = 20
	gridHeight = 10

	screenWidth  = 1280
	screenHeight = 640
)

// arrowKeys maps raylib key codes onto the game's keys, in the order they
// are scanned each frame.
var arrowKeys = []struct {
	code int32
	key  game.Key
}{
	{rl.KeyUp, game.KeyUp},
	{rl.KeyDown, game.KeyDown},
	{rl.KeyLeft, game.KeyLeft},
	{rl.KeyRight, game.KeyRight},
}

func main() {
	grid := types.Grid{Width: gridWidth, Height: gridHeight}
	if err := grid.Validate(); err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(screenWidth, screenHeight, "snek")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	g := game.New(grid)
	events := game.NewInputBuffer()
	renderer := ui.NewRenderer()

	lastUpdate := rl.GetTime()

	for !rl.WindowShouldClose() {
		now := rl.GetTime()

		renderer.Draw(g)

		for _, k := range arrowKeys {
			if rl.IsKeyPressed(k.code) {
				events.Push(now, k.key)
			}
		}

		if rl.IsKeyPressed(rl.KeyR) {
			g = game.New(grid)
			events.Clear()
			continue
		}

		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Simulation rate is decoupled from the render rate.
		if now-lastUpdate > game.PollingRate {
			events.Resolve(now, g.Snake())
			g.Tick()
			lastUpdate = now
		}
	}
}
