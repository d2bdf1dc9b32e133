// Package term hosts the wave layout in a terminal. The container keeps the
// window-sized design canvas and every cell samples the canvas at its centre.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/wavelayout/internal/anim"
	"github.com/iburimskiy/wavelayout/internal/layout"
)

var background = color.NRGBA{R: 14, G: 16, B: 24, A: 255}

// cellSetter is the part of tcell.Screen the renderer writes to.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// render paints every cell of a cols x rows grid mapped onto a canvas of
// canvasW x canvasH.
func render(dst cellSetter, cols, rows int, canvasW, canvasH float64, children []*layout.Element) {
	if cols <= 0 || rows <= 0 {
		return
	}
	sx := canvasW / float64(cols)
	sy := canvasH / float64(rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			px := (float64(c) + 0.5) * sx
			py := (float64(r) + 0.5) * sy
			col := sample(px, py, children)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
			dst.SetContent(c, r, ' ', nil, style)
		}
	}
}

// sample composites the children at a canvas point, back to front.
func sample(px, py float64, children []*layout.Element) color.NRGBA {
	out := background
	for _, el := range children {
		x, y, w, h := el.Bounds()
		if el.Round {
			radius := w / 2
			if radius <= 0 {
				continue
			}
			d := math.Hypot(px-(x+radius), py-(y+h/2))
			if d > radius {
				continue
			}
			out = over(anim.EvaluateARGB(d/radius, el.Fill.Center, el.Fill.Edge), out)
			continue
		}
		if px >= x && px < x+w && py >= y && py < y+h {
			out = over(el.Fill.Center, out)
		}
	}
	return out
}

// over blends src onto an opaque dst.
func over(src, dst color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.NRGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}
