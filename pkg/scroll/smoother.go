package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Smoother eases a scroll offset toward a target with a critically damped
// spring, one Step per animation frame.
type Smoother struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewSmoother creates a smoother stepping at fps frames per second
func NewSmoother(fps int, frequency, damping float64) *Smoother {
	return &Smoother{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Start begins a glide from the current offset to target
func (s *Smoother) Start(from, target float64) {
	s.pos, s.vel, s.target = from, 0, target
	s.active = true
}

// Cancel stops an in-flight glide, e.g. when the user scrolls manually
func (s *Smoother) Cancel() {
	s.active = false
}

// Active reports whether a glide is in progress
func (s *Smoother) Active() bool {
	return s.active
}

// Step advances the glide and returns the offset to scroll to. The glide
// snaps to the target and stops once within half a pixel at rest.
func (s *Smoother) Step() (float64, bool) {
	if !s.active {
		return s.pos, false
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return s.pos, true
}
