package wave

import (
	"math"
	"testing"
	"time"
)

func TestZoom(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy, w, h float64
		base         float64
		want         float64
	}{
		{"centered square", 100, 100, 200, 200, 10, 20},
		{"top-left corner", 0, 0, 200, 100, 10, 40},
		{"bottom-right quadrant", 150, 80, 200, 100, 20, 15},
		{"left of centre uses right edge", 20, 50, 300, 100, 4, 140},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Zoom(tt.cx, tt.cy, tt.w, tt.h, tt.base)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Zoom() = %v, want %v", got, tt.want)
			}
			radius := tt.base / 2 * got
			for _, edge := range []float64{tt.cx, tt.cy, tt.w - tt.cx, tt.h - tt.cy} {
				if radius+1e-9 < edge {
					t.Errorf("scaled radius %v does not reach edge at distance %v", radius, edge)
				}
			}
		})
	}
}

func TestStaggerDelays(t *testing.T) {
	got := StaggerDelays(3, 3000*time.Millisecond)
	want := []time.Duration{2000 * time.Millisecond, 1000 * time.Millisecond, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for _, n := range []int{1, 2, 5, 8} {
		d := StaggerDelays(n, 2*time.Second)
		if d[n-1] != 0 {
			t.Errorf("n=%d: last delay = %v, want 0", n, d[n-1])
		}
		for i := 1; i < n; i++ {
			if d[i] >= d[i-1] {
				t.Errorf("n=%d: delays not strictly decreasing: %v", n, d)
			}
		}
	}

	if StaggerDelays(0, time.Second) != nil {
		t.Error("zero count should produce no delays")
	}
}

func TestFadeAlpha(t *testing.T) {
	tests := []struct {
		fraction float64
		want     uint8
	}{
		{0, 200},
		{0.25, 200},
		{0.5, 200},
		{0.75, 100},
		{1, 0},
	}
	for _, tt := range tests {
		if got := FadeAlpha(200, tt.fraction); got != tt.want {
			t.Errorf("FadeAlpha(200, %v) = %d, want %d", tt.fraction, got, tt.want)
		}
	}

	prev := FadeAlpha(255, 0.5)
	for f := 0.55; f <= 1.0; f += 0.05 {
		a := FadeAlpha(255, f)
		if a > prev {
			t.Errorf("alpha increased at fraction %v: %d > %d", f, a, prev)
		}
		prev = a
	}
}
