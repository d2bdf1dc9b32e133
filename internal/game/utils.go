package game

import (
	"fmt"
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// levelColor runs from green at silence to red at full level.
func levelColor(level float64) color.RGBA {
	r, g, b := colorful.Hsv(120*(1-clamp01(level)), 0.8, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 220}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
