package anim

import (
	"math"
	"time"
)

// Infinite repeats an animator until it is cancelled.
const Infinite = -1

// Interpolator maps the elapsed fraction of a cycle (0..1) to an eased fraction.
type Interpolator func(t float64) float64

// Linear leaves the fraction untouched.
func Linear(t float64) float64 { return t }

// AccelerateDecelerate starts and ends slowly and speeds up through the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Animator steps a single value through repeated cycles of Duration after an
// optional StartDelay. It is driven by Advance from the host frame clock and is
// not safe for concurrent use.
type Animator struct {
	Duration     time.Duration
	StartDelay   time.Duration
	RepeatCount  int // extra cycles after the first; Infinite never ends
	Interpolator Interpolator

	OnUpdate func(a *Animator)
	OnRepeat func(a *Animator, cycle int)
	OnEnd    func(a *Animator)

	elapsed  time.Duration
	cycle    int
	fraction float64
	running  bool
	started  bool
}

// Start resets the animator and begins counting its start delay.
func (a *Animator) Start() {
	a.elapsed = 0
	a.cycle = 0
	a.fraction = 0
	a.running = true
	a.started = false
}

// Cancel stops the animator without invoking any callback.
func (a *Animator) Cancel() {
	a.running = false
	a.started = false
}

// Running reports whether the animator has been started and not yet ended or cancelled.
func (a *Animator) Running() bool { return a.running }

// Started reports whether the start delay has elapsed.
func (a *Animator) Started() bool { return a.started }

// Cycle is the zero-based index of the current repeat.
func (a *Animator) Cycle() int { return a.cycle }

// Fraction is the raw elapsed fraction of the current cycle.
func (a *Animator) Fraction() float64 { return a.fraction }

// AnimatedFraction is Fraction passed through the interpolator.
func (a *Animator) AnimatedFraction() float64 {
	if a.Interpolator == nil {
		return a.fraction
	}
	return a.Interpolator(a.fraction)
}

// Advance moves the animator forward by dt.
func (a *Animator) Advance(dt time.Duration) {
	if !a.running || dt < 0 {
		return
	}
	a.elapsed += dt
	active := a.elapsed - a.StartDelay
	if active < 0 {
		return
	}
	a.started = true

	if a.Duration <= 0 {
		a.fraction = 1
		a.update()
		a.end()
		return
	}

	cycle := int(active / a.Duration)
	if a.RepeatCount != Infinite && cycle > a.RepeatCount {
		a.fraction = 1
		a.cycle = a.RepeatCount
		a.update()
		a.end()
		return
	}

	for a.cycle < cycle {
		a.cycle++
		if a.OnRepeat != nil {
			a.OnRepeat(a, a.cycle)
		}
		if !a.running {
			return
		}
	}
	a.fraction = float64(active%a.Duration) / float64(a.Duration)
	a.update()
}

func (a *Animator) update() {
	if a.OnUpdate != nil {
		a.OnUpdate(a)
	}
}

func (a *Animator) end() {
	a.running = false
	if a.OnEnd != nil {
		a.OnEnd(a)
	}
}
