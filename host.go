package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"neontanks/game"
	"neontanks/internal/profiling"
	"neontanks/render"
)

// Host drives the game from ebiten's update loop. One Update is one tick.
type Host struct {
	game     *game.Game
	clock    *game.FrameClock
	renderer *render.Renderer
	hud      *render.HUD
	debug    *render.DebugState
	watchdog *profiling.Watchdog
	log      zerolog.Logger

	width, height int
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	f := h.clock.Next()
	h.watchdog.Observe(f.Now, f.Delta, h.game.EntityCount())

	if err := handleSystemKeys(h.debug); err != nil {
		h.log.Info().Int("score", h.game.Score()).Msg("quit")
		return err
	}
	h.game.Tick(pollInput(), f)
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen)
	h.hud.Draw(screen)
}

// Layout returns the playfield size so cursor positions are playfield coordinates
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
