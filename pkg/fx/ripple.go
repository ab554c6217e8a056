package fx

import (
	"math"
	"math/rand/v2"
)

// RippleConfig parameterises the hero ripple grid
type RippleConfig struct {
	Spacing          float64 `koanf:"spacing" yaml:"spacing" json:"spacing"`
	Speed            float64 `koanf:"speed" yaml:"speed" json:"speed"`
	Decay            float64 `koanf:"decay" yaml:"decay" json:"decay"`
	MaxRipples       int     `koanf:"max_ripples" yaml:"max_ripples" json:"maxRipples"`
	WaveWidth        float64 `koanf:"wave_width" yaml:"wave_width" json:"waveWidth"`
	PointerThreshold float64 `koanf:"pointer_threshold" yaml:"pointer_threshold" json:"pointerThreshold"`
	AmbientEvery     int     `koanf:"ambient_every" yaml:"ambient_every" json:"ambientEvery"`
	AmbientChance    float64 `koanf:"ambient_chance" yaml:"ambient_chance" json:"ambientChance"`
	AmbientStrength  float64 `koanf:"ambient_strength" yaml:"ambient_strength" json:"ambientStrength"`
}

// DefaultRippleConfig returns the hero grid parameters
func DefaultRippleConfig() RippleConfig {
	return RippleConfig{
		Spacing:          40,
		Speed:            8,
		Decay:            0.03,
		MaxRipples:       10,
		WaveWidth:        50,
		PointerThreshold: 30,
		AmbientEvery:     60,
		AmbientChance:    0.5,
		AmbientStrength:  0.4,
	}
}

// Ripple is an expanding ring of influence
type Ripple struct {
	X, Y     float64
	Radius   float64
	Strength float64
}

// Dot is a rest position on the ripple grid
type Dot struct {
	X, Y float64
}

var dormant = Purple.WithAlpha(0.15)

// RippleField is the hero background: a grid of dots lit by expanding
// ripples spawned by pointer movement and an ambient timer.
type RippleField struct {
	cfg     RippleConfig
	rng     *rand.Rand
	w, h    float64
	dots    []Dot
	ripples []Ripple
	frame   int
	lastX   float64
	lastY   float64
}

// NewRippleField creates a ripple grid. Call Resize before the first frame.
func NewRippleField(cfg RippleConfig, rng *rand.Rand) *RippleField {
	if rng == nil {
		rng = NewRand(0)
	}
	return &RippleField{cfg: cfg, rng: rng}
}

// Resize rebuilds the dot grid and clears all ripples.
func (f *RippleField) Resize(w, h float64) {
	f.w, f.h = w, h
	f.ripples = f.ripples[:0]
	f.dots = f.dots[:0]
	if f.cfg.Spacing <= 0 {
		return
	}
	// One dot past the far edge on both axes
	cols := int(math.Ceil(w / f.cfg.Spacing))
	rows := int(math.Ceil(h / f.cfg.Spacing))
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			f.dots = append(f.dots, Dot{X: float64(i) * f.cfg.Spacing, Y: float64(j) * f.cfg.Spacing})
		}
	}
}

// Pointer spawns a full-strength ripple once the pointer has travelled past
// the threshold since the last accepted sample.
func (f *RippleField) Pointer(ev PointerEvent) {
	if ev.Kind != PointerMove {
		return
	}
	if math.Hypot(ev.X-f.lastX, ev.Y-f.lastY) <= f.cfg.PointerThreshold {
		return
	}
	f.spawn(ev.X, ev.Y, 1)
	f.lastX, f.lastY = ev.X, ev.Y
}

// spawn adds a ripple unless the cap is reached
func (f *RippleField) spawn(x, y, strength float64) bool {
	if len(f.ripples) >= f.cfg.MaxRipples {
		return false
	}
	f.ripples = append(f.ripples, Ripple{X: x, Y: y, Strength: strength})
	return true
}

// Step advances every ripple, then occasionally spawns an ambient one. A new
// ambient ripple starts at full strength and radius 0 on the next draw.
func (f *RippleField) Step() {
	f.frame++
	live := f.ripples[:0]
	for _, r := range f.ripples {
		r.Radius += f.cfg.Speed
		r.Strength -= f.cfg.Decay
		if r.Strength > 0 {
			live = append(live, r)
		}
	}
	f.ripples = live

	if f.cfg.AmbientEvery > 0 && f.frame%f.cfg.AmbientEvery == 0 && f.rng.Float64() > f.cfg.AmbientChance {
		f.spawn(f.rng.Float64()*f.w, f.rng.Float64()*f.h, f.cfg.AmbientStrength)
	}
}

// Influence returns the summed ripple intensity at a point, capped at 1.
func (f *RippleField) Influence(x, y float64) float64 {
	total := 0.0
	for _, r := range f.ripples {
		fromWave := math.Abs(math.Hypot(x-r.X, y-r.Y) - r.Radius)
		if fromWave < f.cfg.WaveWidth {
			total += (1 - fromWave/f.cfg.WaveWidth) * r.Strength
		}
	}
	return math.Min(total, 1)
}

// DotStyle maps an influence value to the dot radius and fill colour.
func DotStyle(influence float64) (float64, Color) {
	size := 1.5 + influence*3
	switch {
	case influence > 0.5:
		return size, Gold.WithAlpha(influence)
	case influence > 0.1:
		return size, Purple.WithAlpha(influence + 0.2)
	default:
		return size, dormant
	}
}

// Draw renders every dot sized and coloured by its influence.
func (f *RippleField) Draw(s Surface) {
	s.Clear()
	for _, d := range f.dots {
		size, c := DotStyle(f.Influence(d.X, d.Y))
		s.FillCircle(d.X, d.Y, size, c)
	}
}

// Ripples returns a copy of the active ripples
func (f *RippleField) Ripples() []Ripple {
	return append([]Ripple(nil), f.ripples...)
}

// Dots returns the grid rest positions
func (f *RippleField) Dots() []Dot {
	return f.dots
}
