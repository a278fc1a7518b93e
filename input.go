package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neontanks/game"
	"neontanks/render"
)

// handleSystemKeys processes keys that act on the window rather than the game
func handleSystemKeys(debug *render.DebugState) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F1 toggles the hitbox overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug.Toggle()
	}

	// Alt+Enter toggles fullscreen
	if altPressed() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

func altPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
}

// pollInput reads keyboard and mouse state into a game.Input
func pollInput() game.Input {
	cx, cy := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	return game.Input{
		Keys: game.MovementKeys{
			Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		},
		AimX:  float64(cx),
		AimY:  float64(cy),
		Fire:  clicked || ebiten.IsKeyPressed(ebiten.KeySpace),
		Start: clicked || (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !altPressed()),
	}
}
