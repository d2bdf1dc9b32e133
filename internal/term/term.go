package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/config"
	"github.com/iburimskiy/wavelayout/internal/layout"
	"github.com/iburimskiy/wavelayout/internal/wave"
)

type App struct {
	screen    tcell.Screen
	container *layout.Container
	emitter   *wave.Emitter
	log       *zap.Logger
	lastErr   error
}

// New builds the scene on a window-sized canvas and starts the waves.
func New(screen tcell.Screen, scene *config.Scene, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := scene.WaveConfig()
	if err != nil {
		return nil, err
	}
	c := layout.NewContainer()
	scene.Populate(c)

	a := &App{screen: screen, container: c, log: log.Named("term")}
	a.emitter, err = wave.New(c, cfg,
		wave.WithLogger(log.Named("wave")),
		wave.WithErrorHandler(func(err error) { a.lastErr = err }),
	)
	if err != nil {
		return nil, err
	}
	if err := a.emitter.Start(); err != nil {
		return nil, err
	}
	c.SetBounds(config.WindowWidth, config.WindowHeight)
	if a.lastErr != nil {
		return nil, a.lastErr
	}
	return a, nil
}

// Run drives the frame loop until ctx is done or the user quits. The emitter
// is only touched from this goroutine.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TerminalFPS)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			a.emitter.Stop()
			return nil
		case ev := <-events:
			if quit := a.handle(ev); quit {
				a.emitter.Stop()
				return nil
			}
		case now := <-ticker.C:
			a.emitter.Update(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
		if ev.Rune() == ' ' {
			a.toggle()
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) toggle() {
	if a.emitter.Active() {
		a.emitter.Stop()
		return
	}
	if err := a.emitter.Start(); err != nil {
		a.lastErr = err
		a.log.Error("failed to start waves", zap.Error(err))
	}
}

func (a *App) draw() {
	cols, rows := a.screen.Size()
	w, h := a.container.Size()
	render(a.screen, cols, rows, w, h, a.container.Children())
	a.screen.Show()
}
