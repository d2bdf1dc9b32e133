package wave

import (
	"image/color"
	"time"

	"github.com/iburimskiy/wavelayout/internal/anim"
	"github.com/iburimskiy/wavelayout/internal/layout"
)

// RingState is a read-only snapshot of one live ring.
type RingState struct {
	Index  int
	Delay  time.Duration
	Scale  float64
	Center color.NRGBA
	Edge   color.NRGBA
	Cycle  int
}

type ring struct {
	index int
	delay time.Duration
	el    *layout.Element
	set   *anim.Set
	scale *anim.Animator
}

func newRing(index int, delay time.Duration, cx, cy, zoom float64, cfg Config, onCycle func(ring, cycle int)) *ring {
	size := cfg.BaseSize
	el := &layout.Element{
		X:      cx - size/2,
		Y:      cy - size/2,
		Width:  size,
		Height: size,
		ScaleX: 1,
		ScaleY: 1,
		Fill:   layout.Gradient{Center: cfg.Color, Edge: cfg.Color},
		Round:  true,
	}

	scale := &anim.Animator{
		Duration:     cfg.Duration,
		RepeatCount:  anim.Infinite,
		Interpolator: anim.Linear,
		OnUpdate: func(a *anim.Animator) {
			s := anim.Lerp(1, zoom, a.AnimatedFraction())
			el.ScaleX, el.ScaleY = s, s
		},
	}
	if onCycle != nil {
		scale.OnRepeat = func(_ *anim.Animator, cycle int) { onCycle(index, cycle) }
	}

	end := anim.WithAlpha(cfg.Color, 0)
	fade := &anim.Animator{
		Duration:     cfg.Duration,
		RepeatCount:  anim.Infinite,
		Interpolator: anim.AccelerateDecelerate,
		OnUpdate: func(a *anim.Animator) {
			f := a.AnimatedFraction()
			el.Fill.Edge = anim.EvaluateARGB(f, cfg.Color, end)
			el.Fill.Center = anim.WithAlpha(cfg.Color, FadeAlpha(cfg.Color.A, f))
		},
	}

	set := &anim.Set{StartDelay: delay}
	set.PlayTogether(scale, fade)

	return &ring{index: index, delay: delay, el: el, set: set, scale: scale}
}

func (r *ring) state() RingState {
	return RingState{
		Index:  r.index,
		Delay:  r.delay,
		Scale:  r.el.ScaleX,
		Center: r.el.Fill.Center,
		Edge:   r.el.Fill.Edge,
		Cycle:  r.scale.Cycle(),
	}
}
