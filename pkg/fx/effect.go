// Package fx implements the decorative animation loops: the hero ripple
// grid, the footer elastic grid, the ambient particle field and the
// spotlight/scanner helpers. Effects hold all of their state per instance
// and are driven one frame at a time by a scheduler.
package fx

import (
	"math/rand/v2"
	"time"
)

// Effect is a per-instance animation. All methods must be called from the
// goroutine that owns the frame loop.
type Effect interface {
	// Resize rebuilds the effect for a new drawing area.
	Resize(w, h float64)
	// Pointer feeds a pointer sample in surface coordinates.
	Pointer(ev PointerEvent)
	// Step advances the simulation by one frame.
	Step()
	// Draw clears s and renders the current state.
	Draw(s Surface)
}

// PointerKind distinguishes pointer samples
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerLeave
)

// PointerEvent is a pointer sample relative to the effect's surface
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Move is shorthand for a PointerMove event
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y}
}

// Leave is shorthand for a PointerLeave event
func Leave() PointerEvent {
	return PointerEvent{Kind: PointerLeave}
}

// Far is where a departed pointer is parked so it influences nothing.
const Far = -1000.0

// NewRand returns a seeded generator. A zero seed draws from the runtime source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Kind names an effect for configuration and the CLI previewers
type Kind string

const (
	KindRipple    Kind = "ripple"
	KindElastic   Kind = "elastic"
	KindParticles Kind = "particles"
	KindScanner   Kind = "scanner"
)

// Kinds lists every effect in display order
var Kinds = []Kind{KindRipple, KindElastic, KindParticles, KindScanner}

// Config bundles the parameters of every effect
type Config struct {
	Ripple    RippleConfig   `koanf:"ripple" yaml:"ripple" json:"ripple"`
	Elastic   ElasticConfig  `koanf:"elastic" yaml:"elastic" json:"elastic"`
	Particles ParticleConfig `koanf:"particles" yaml:"particles" json:"particles"`
	Scanner   ScannerConfig  `koanf:"scanner" yaml:"scanner" json:"scanner"`
}

// DefaultConfig returns the production parameters
func DefaultConfig() Config {
	return Config{
		Ripple:    DefaultRippleConfig(),
		Elastic:   DefaultElasticConfig(),
		Particles: DefaultParticleConfig(),
		Scanner:   DefaultScannerConfig(),
	}
}

// New builds the named effect. Unknown kinds return false.
func (c Config) New(kind Kind, rng *rand.Rand) (Effect, bool) {
	switch kind {
	case KindRipple:
		return NewRippleField(c.Ripple, rng), true
	case KindElastic:
		return NewElasticGrid(c.Elastic), true
	case KindParticles:
		return NewParticleField(c.Particles, rng), true
	case KindScanner:
		return NewScanner(c.Scanner), true
	}
	return nil, false
}
