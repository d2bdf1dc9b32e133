// Package game hosts the wave layout in an ebiten window.
package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/config"
	"github.com/iburimskiy/wavelayout/internal/layout"
	"github.com/iburimskiy/wavelayout/internal/pulse"
	"github.com/iburimskiy/wavelayout/internal/settings"
	"github.com/iburimskiy/wavelayout/internal/wave"
)

type Options struct {
	Scene     *config.Scene
	ScenePath string
	Cue       *pulse.Cue
	Settings  *settings.Manager
	Logger    *zap.Logger
}

type Game struct {
	container *layout.Container
	emitter   *wave.Emitter
	cue       *pulse.Cue
	prefs     *settings.Manager
	log       *zap.Logger

	scenePath string

	// outside size reported by Layout, applied on the next Update
	width, height    int
	boundsW, boundsH int
	running          time.Duration

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func New(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	scene := opts.Scene
	if scene == nil {
		scene = config.Default()
	}
	g := &Game{
		cue:       opts.Cue,
		prefs:     opts.Settings,
		log:       log.Named("game"),
		scenePath: opts.ScenePath,
		prevKey:   map[ebiten.Key]bool{},
	}
	if g.cue != nil && g.prefs != nil {
		g.cue.SetMuted(g.prefs.Settings().Muted)
	}
	if err := g.install(scene); err != nil {
		return nil, err
	}
	return g, nil
}

// install replaces the container and emitter with ones built from scene and
// starts the waves. The start is deferred until the first bounds are known.
func (g *Game) install(scene *config.Scene) error {
	cfg, err := scene.WaveConfig()
	if err != nil {
		return err
	}
	c := layout.NewContainer()
	scene.Populate(c)

	e, err := wave.New(c, cfg,
		wave.WithLogger(g.log.Named("wave")),
		wave.WithErrorHandler(func(err error) { g.lastErr = err }),
		wave.WithCycleHook(g.onCycle),
	)
	if err != nil {
		return err
	}

	if g.emitter != nil {
		g.emitter.Stop()
	}
	g.container, g.emitter = c, e
	g.running = 0
	if g.boundsW > 0 && g.boundsH > 0 {
		c.SetBounds(float64(g.boundsW), float64(g.boundsH))
	}
	return e.Start()
}

func (g *Game) onCycle(ring, cycle int) {
	g.log.Debug("ring restarted", zap.Int("ring", ring), zap.Int("cycle", cycle))
	if g.cue != nil {
		g.cue.Trigger()
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openSceneDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.toggle()
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openSceneDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// step applies pending bounds and advances the waves by dt.
func (g *Game) step(dt time.Duration) {
	if g.width > 0 && g.height > 0 && (g.width != g.boundsW || g.height != g.boundsH) {
		resized := g.container.IsLaidOut()
		g.boundsW, g.boundsH = g.width, g.height
		g.container.SetBounds(float64(g.width), float64(g.height))
		if resized && g.emitter.Active() {
			// zoom depends on the container size
			if err := g.emitter.Reconfigure(g.emitter.Config()); err != nil {
				g.lastErr = err
			}
		}
	}
	g.emitter.Update(dt)
	if g.emitter.Active() {
		g.running += dt
	}
}

func (g *Game) toggle() {
	if g.emitter.Active() || g.emitter.Pending() {
		g.emitter.Stop()
		return
	}
	g.running = 0
	if err := g.emitter.Start(); err != nil {
		g.lastErr = err
	}
}

func (g *Game) toggleMute() {
	if g.cue == nil {
		return
	}
	muted := !g.cue.Muted()
	g.cue.SetMuted(muted)
	if g.prefs != nil {
		g.prefs.SetMuted(muted)
		if err := g.prefs.Save(); err != nil {
			g.log.Warn("failed to save settings", zap.Error(err))
		}
	}
}

func (g *Game) openSceneDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Wave Scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.LoadScene(filename)
}

// LoadScene swaps in the scene at path and remembers it for the next run.
func (g *Game) LoadScene(path string) error {
	scene, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := g.install(scene); err != nil {
		return err
	}
	g.scenePath = path
	g.lastErr = nil
	if g.cue != nil {
		g.cue.SetSettings(scene.PulseSettings())
	}
	g.log.Info("scene loaded", zap.String("path", path))

	if g.prefs != nil {
		g.prefs.SetLastScene(path)
		if err := g.prefs.Save(); err != nil {
			g.log.Warn("failed to save settings", zap.Error(err))
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
