package fx

import (
	"math"
	"math/rand/v2"
)

// ParticleConfig parameterises the ambient particle network
type ParticleConfig struct {
	Count              int     `koanf:"count" yaml:"count" json:"count"`
	ConnectionDistance float64 `koanf:"connection_distance" yaml:"connection_distance" json:"connectionDistance"`
	MouseDistance      float64 `koanf:"mouse_distance" yaml:"mouse_distance" json:"mouseDistance"`
	MaxSpeed           float64 `koanf:"max_speed" yaml:"max_speed" json:"maxSpeed"`
	Glow               float64 `koanf:"glow" yaml:"glow" json:"glow"`
}

// DefaultParticleConfig returns the ambient field parameters
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:              60,
		ConnectionDistance: 140,
		MouseDistance:      200,
		MaxSpeed:           0.75,
		Glow:               15,
	}
}

// Particle is a drifting point in the network
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Tint   Color
}

// ParticleField is a constant-size set of particles joined by proximity lines.
// The pair scan is quadratic, so Count must stay in the tens.
type ParticleField struct {
	cfg       ParticleConfig
	rng       *rand.Rand
	w, h      float64
	particles []Particle
	mx, my    float64
}

// NewParticleField creates a field; particles are seeded on Resize.
func NewParticleField(cfg ParticleConfig, rng *rand.Rand) *ParticleField {
	if rng == nil {
		rng = NewRand(0)
	}
	return &ParticleField{cfg: cfg, rng: rng, mx: Far, my: Far}
}

// Resize reseeds every particle inside the new bounds.
func (f *ParticleField) Resize(w, h float64) {
	f.w, f.h = w, h
	f.particles = f.particles[:0]
	for i := 0; i < f.cfg.Count; i++ {
		tint := Cyan
		if f.rng.Float64() > 0.5 {
			tint = Magenta
		}
		f.particles = append(f.particles, Particle{
			X:    f.rng.Float64() * w,
			Y:    f.rng.Float64() * h,
			VX:   (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
			VY:   (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
			Size: f.rng.Float64()*2 + 1,
			Tint: tint,
		})
	}
}

// Pointer tracks the pointer for the bright mouse links
func (f *ParticleField) Pointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		f.mx, f.my = ev.X, ev.Y
	case PointerLeave:
		f.mx, f.my = Far, Far
	}
}

// Step moves every particle and reflects it off the edges.
func (f *ParticleField) Step() {
	for i := range f.particles {
		f.particles[i].advance(f.w, f.h)
	}
}

func (p *Particle) advance(w, h float64) {
	p.X += p.VX
	p.Y += p.VY
	if p.X < 0 || p.X > w {
		p.VX = -p.VX
		p.X = math.Max(0, math.Min(w, p.X))
	}
	if p.Y < 0 || p.Y > h {
		p.VY = -p.VY
		p.Y = math.Max(0, math.Min(h, p.Y))
	}
}

// Draw renders the particles, their pair links and the pointer links.
func (f *ParticleField) Draw(s Surface) {
	s.Clear()
	glow, _ := s.(Glower)
	for i, p := range f.particles {
		if glow != nil && f.cfg.Glow > 0 {
			glow.SetGlow(f.cfg.Glow, p.Tint)
		}
		s.FillCircle(p.X, p.Y, p.Size, p.Tint.WithAlpha(0.8))
		if glow != nil && f.cfg.Glow > 0 {
			glow.SetGlow(0, p.Tint)
		}

		for _, q := range f.particles[i+1:] {
			if d := math.Hypot(p.X-q.X, p.Y-q.Y); d < f.cfg.ConnectionDistance {
				s.StrokeLine(p.X, p.Y, q.X, q.Y, 1, Lilac.WithAlpha((1-d/f.cfg.ConnectionDistance)*0.2))
			}
		}

		if d := math.Hypot(p.X-f.mx, p.Y-f.my); d < f.cfg.MouseDistance {
			s.StrokeLine(p.X, p.Y, f.mx, f.my, 1.5, White.WithAlpha((1-d/f.cfg.MouseDistance)*0.5))
		}
	}
}

// Particles exposes the field for inspection
func (f *ParticleField) Particles() []Particle {
	return f.particles
}
