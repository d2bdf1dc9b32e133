package wave

import (
	"math"
	"time"
)

// fadeStart is the eased fraction after which the ring centre starts to fade.
const fadeStart = 0.5

// Zoom returns the scale a ring of baseSize needs so that its radius reaches
// the container edge farthest from (cx, cy).
func Zoom(cx, cy, width, height, baseSize float64) float64 {
	reach := math.Max(math.Max(cx, cy), math.Max(width-cx, height-cy))
	return reach / (baseSize / 2)
}

// StaggerDelays returns the start delay of every ring. Ring i waits
// (count-1-i) slots of duration/count, so the last ring starts at once.
func StaggerDelays(count int, duration time.Duration) []time.Duration {
	if count < 1 {
		return nil
	}
	slot := duration / time.Duration(count)
	delays := make([]time.Duration, count)
	for i := range delays {
		delays[i] = time.Duration(count-1-i) * slot
	}
	return delays
}

// FadeAlpha keeps full alpha up to the halfway point and then decays it
// linearly to zero at fraction 1.
func FadeAlpha(full uint8, fraction float64) uint8 {
	if fraction <= fadeStart {
		return full
	}
	if fraction >= 1 {
		return 0
	}
	speed := 1 / (1 - fadeStart)
	a := float64(full) - (fraction-fadeStart)*speed*float64(full)
	if a < 0 {
		return 0
	}
	return uint8(a)
}
