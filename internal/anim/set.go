package anim

import "time"

// Set plays a group of animators together behind a shared start delay.
type Set struct {
	StartDelay time.Duration

	animators []*Animator
	elapsed   time.Duration
	running   bool
}

// PlayTogether appends animators that start at the same time.
func (s *Set) PlayTogether(animators ...*Animator) {
	s.animators = append(s.animators, animators...)
}

// Animators returns the members of the set.
func (s *Set) Animators() []*Animator { return s.animators }

// Start begins the shared delay and starts every member.
func (s *Set) Start() {
	s.elapsed = 0
	s.running = true
	for _, a := range s.animators {
		a.Start()
	}
}

// Cancel stops every member.
func (s *Set) Cancel() {
	s.running = false
	for _, a := range s.animators {
		a.Cancel()
	}
}

// Running reports whether any member is still running.
func (s *Set) Running() bool {
	if !s.running {
		return false
	}
	for _, a := range s.animators {
		if a.Running() {
			return true
		}
	}
	return false
}

// Advance consumes the set delay first and forwards the rest to every member.
func (s *Set) Advance(dt time.Duration) {
	if !s.running || dt < 0 {
		return
	}
	if s.elapsed < s.StartDelay {
		remaining := s.StartDelay - s.elapsed
		if dt < remaining {
			s.elapsed += dt
			return
		}
		s.elapsed = s.StartDelay
		dt -= remaining
	}
	for _, a := range s.animators {
		if !s.running {
			return
		}
		a.Advance(dt)
	}
}
