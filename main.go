package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/config"
	"github.com/iburimskiy/wavelayout/internal/game"
	"github.com/iburimskiy/wavelayout/internal/logging"
	"github.com/iburimskiy/wavelayout/internal/pulse"
	"github.com/iburimskiy/wavelayout/internal/settings"
)

func main() {
	scenePath := flag.String("scene", "", "wave scene YAML file (defaults to the last opened scene, then the built-in one)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	dev := flag.Bool("dev", false, "human-readable log output")
	mute := flag.Bool("mute", false, "start with the audio cue muted")
	flag.Parse()

	log, err := logging.New(logging.WithLevel(*logLevel), logging.WithDevelopment(*dev))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	prefs := settings.Open(log.Named("settings"))
	if *mute {
		prefs.SetMuted(true)
	}

	scene, path := loadScene(log, *scenePath, prefs.Settings().LastScene)

	cue := pulse.NewCue(scene.PulseSettings(), log.Named("pulse"))
	if err := cue.Start(); err != nil {
		log.Warn("audio cue disabled", zap.Error(err))
		cue = nil
	}

	g, err := game.New(game.Options{
		Scene:     scene,
		ScenePath: path,
		Cue:       cue,
		Settings:  prefs,
		Logger:    log,
	})
	if err != nil {
		log.Fatal("failed to build scene", zap.Error(err))
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Wave Layout - Space: start/stop, O: open scene, M: mute, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game loop failed", zap.Error(err))
	}
}

// loadScene prefers an explicit path, then the remembered one, then the
// embedded default. Only an explicit path is fatal when it cannot be loaded.
func loadScene(log *zap.Logger, explicit, remembered string) (*config.Scene, string) {
	if explicit != "" {
		s, err := config.Load(explicit)
		if err != nil {
			log.Fatal("failed to load scene", zap.String("path", explicit), zap.Error(err))
		}
		return s, explicit
	}
	if remembered != "" {
		s, err := config.Load(remembered)
		if err == nil {
			return s, remembered
		}
		log.Warn("remembered scene unavailable, using built-in", zap.String("path", remembered), zap.Error(err))
	}
	return config.Default(), ""
}
