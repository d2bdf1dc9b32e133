package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wavelayout/internal/anim"
	"github.com/iburimskiy/wavelayout/internal/config"
	"github.com/iburimskiy/wavelayout/internal/layout"
)

var backgroundColor = color.RGBA{R: 14, G: 16, B: 24, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, el := range g.container.Children() {
		drawElement(screen, el)
	}

	g.drawButton(screen)
	g.drawLevelBar(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) status() string {
	var status string
	switch {
	case g.emitter.Active():
		status = "Waves running " + formatDuration(g.running) + " - Space: stop"
	case g.emitter.Pending():
		status = "Waiting for layout"
	default:
		status = "Stopped - Space: start"
	}
	status += ", O: open scene, M: mute, Esc/Q: quit"
	if g.cue != nil && g.cue.Muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func drawElement(screen *ebiten.Image, el *layout.Element) {
	x, y, w, h := el.Bounds()
	if !el.Round {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), el.Fill.Center, false)
		return
	}
	cx, cy := x+w/2, y+h/2
	for _, band := range radialBands(w/2, el.Fill, config.GradientSteps) {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(band.radius), float32(band.width), band.color, true)
	}
}

type band struct {
	radius float64
	width  float64
	color  color.NRGBA
}

// radialBands splits a disc of radius r into non-overlapping rings, coloured
// from the gradient centre outwards.
func radialBands(r float64, fill layout.Gradient, steps int) []band {
	if r <= 0 || steps < 1 {
		return nil
	}
	width := r / float64(steps)
	bands := make([]band, steps)
	for i := range bands {
		t := (float64(i) + 0.5) / float64(steps)
		bands[i] = band{
			radius: t * r,
			width:  width,
			color:  anim.EvaluateARGB(t, fill.Center, fill.Edge),
		}
	}
	return bands
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "Open Scene"
	textWidth := len(text) * 6 // debug font glyph width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// drawLevelBar shows the cue output level under the button.
func (g *Game) drawLevelBar(screen *ebiten.Image) {
	if g.cue == nil {
		return
	}
	barX := float32(config.ButtonX)
	barY := float32(config.ButtonY + config.ButtonHeight + 12)

	vector.DrawFilledRect(screen, barX, barY, config.LevelBarWidth, config.LevelBarHeight, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, barX, barY, config.LevelBarWidth, config.LevelBarHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	// sqrt keeps short quiet blips visible
	level := clamp01(math.Sqrt(g.cue.Level()) * 2)
	if level <= 0 {
		return
	}
	vector.DrawFilledRect(screen, barX, barY, float32(level*config.LevelBarWidth), config.LevelBarHeight, levelColor(level), false)
}
