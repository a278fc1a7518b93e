package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"neontanks/game"
	"neontanks/internal/audio"
	"neontanks/internal/config"
	"neontanks/internal/logging"
	"neontanks/internal/profiling"
	"neontanks/internal/telemetry"
	"neontanks/render"
)

// stallWarmup ignores the slow first frames while the window comes up
const stallWarmup = 3 * time.Second

func main() {
	configDir := flag.String("config", ".", "Directory containing neontanks.{json,yaml,toml}")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock; overrides game.seed)")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *seed != 0 {
		settings.Game.Seed = *seed
	}

	logger := logging.Setup(settings.LogLevel, os.Stdout, true)

	sound, err := audio.New(settings.Audio.Enabled, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		sound, _ = audio.New(false, logger)
	}
	defer sound.Close()

	metrics, err := telemetry.New(telemetry.Meter())
	if err != nil {
		logger.Fatal().Err(err).Msg("setting up metrics")
	}

	var profiler *profiling.Profiler
	if settings.Profiling.Enabled {
		profiler, err = profiling.NewProfiler(settings.Profiling.Dir, settings.Profiling.CaptureFor, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("setting up profiler")
		}
	}

	debug := &render.DebugState{}
	renderer := render.NewRenderer(debug)
	hud := render.NewHUD(settings.Game.Width, settings.Game.Height)

	g, err := game.NewGame(settings.Game,
		game.WithRenderer(renderer),
		game.WithHUD(hud),
		game.WithListener(sound, metrics),
		game.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("creating game")
	}

	host := &Host{
		game:     g,
		clock:    game.NewFrameClock(),
		renderer: renderer,
		hud:      hud,
		debug:    debug,
		watchdog: profiling.NewWatchdog(settings.Profiling.StallThreshold, stallWarmup, profiler, logging.Sampled(logger)),
		log:      logger,
		width:    int(settings.Game.Width),
		height:   int(settings.Game.Height),
	}

	ebiten.SetWindowSize(host.width, host.height)
	ebiten.SetWindowTitle("Neon Tanks")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop")
	}
	if profiler != nil {
		profiler.Wait()
	}
}
