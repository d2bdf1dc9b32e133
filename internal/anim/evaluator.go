package anim

import (
	"image/color"
	"math"
)

// Lerp interpolates linearly between from and to.
func Lerp(from, to, f float64) float64 {
	return from + (to-from)*f
}

// EvaluateARGB interpolates each channel of two non-premultiplied colours.
func EvaluateARGB(f float64, from, to color.NRGBA) color.NRGBA {
	ch := func(a, b uint8) uint8 {
		return uint8(math.Round(Lerp(float64(a), float64(b), f)))
	}
	return color.NRGBA{
		R: ch(from.R, to.R),
		G: ch(from.G, to.G),
		B: ch(from.B, to.B),
		A: ch(from.A, to.A),
	}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}
