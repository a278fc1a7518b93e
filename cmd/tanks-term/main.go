// Command tanks-term plays Neon Tanks in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"neontanks/game"
	"neontanks/internal/audio"
	"neontanks/internal/config"
	"neontanks/internal/logging"
	"neontanks/internal/telemetry"
	"neontanks/termui"
)

const tickInterval = 16 * time.Millisecond

func main() {
	configDir := flag.String("config", ".", "Directory containing neontanks.{json,yaml,toml}")
	logPath := flag.String("log", "neontanks-term.log", "Log file (the terminal is busy drawing)")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock; overrides game.seed)")
	flag.Parse()

	if err := run(*configDir, *logPath, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configDir, logPath string, seed int64) error {
	settings, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if seed != 0 {
		settings.Game.Seed = seed
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.Setup(settings.LogLevel, logFile, false)

	sound, err := audio.New(settings.Audio.Enabled, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		sound, _ = audio.New(false, logger)
	}
	defer sound.Close()

	metrics, err := telemetry.New(telemetry.Meter())
	if err != nil {
		return fmt.Errorf("setting up metrics: %w", err)
	}

	renderer := termui.NewRenderer()
	hud := termui.NewHUD()
	g, err := game.NewGame(settings.Game,
		game.WithRenderer(renderer),
		game.WithHUD(hud),
		game.WithListener(sound, metrics),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	loop(screen, g, renderer, hud, logger)
	logger.Info().Int("score", g.Score()).Int64("metric_score", metrics.Score()).Msg("quit")
	return nil
}

// loop ticks the game every tickInterval and feeds it terminal events
// until the player quits.
func loop(screen tcell.Screen, g *game.Game, renderer *termui.Renderer, hud *termui.HUD, log zerolog.Logger) {
	bounds := g.Config().Bounds()
	cols, rows := screen.Size()
	input := termui.NewInput(termui.NewViewport(bounds, cols, rows))
	clock := game.NewFrameClock()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if resize, isResize := ev.(*tcell.EventResize); isResize {
				cols, rows := resize.Size()
				input.SetViewport(termui.NewViewport(bounds, cols, rows))
				screen.Sync()
				continue
			}
			switch input.Handle(ev, time.Now()) {
			case termui.ActionQuit:
				return
			case termui.ActionToggleDebug:
				renderer.ToggleStats()
				log.Debug().Msg("stats line toggled")
			}

		case <-ticker.C:
			g.Tick(input.Poll(time.Now()), clock.Next())

			cols, rows := screen.Size()
			screen.Clear()
			renderer.Draw(screen, termui.NewViewport(bounds, cols, rows))
			hud.Draw(screen)
			screen.Show()
		}
	}
}
