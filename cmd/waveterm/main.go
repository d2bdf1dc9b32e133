// Command waveterm draws the wave layout in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/config"
	"github.com/iburimskiy/wavelayout/internal/logging"
	"github.com/iburimskiy/wavelayout/internal/term"
)

func main() {
	scenePath := flag.String("scene", "", "wave scene YAML file (defaults to the built-in scene)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", os.DevNull, "where to write logs; the terminal is taken by the screen")
	flag.Parse()

	log, err := logging.New(logging.WithLevel(*logLevel), logging.WithOutput(*logFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *scenePath); err != nil {
		log.Error("waveterm failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, scenePath string) error {
	scene := config.Default()
	if scenePath != "" {
		s, err := config.Load(scenePath)
		if err != nil {
			return err
		}
		scene = s
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := term.New(screen, scene, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx)
}
