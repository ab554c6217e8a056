package fx

import "math"

// ElasticConfig parameterises the footer elastic grid
type ElasticConfig struct {
	Spacing    float64 `koanf:"spacing" yaml:"spacing" json:"spacing"`
	Influence  float64 `koanf:"influence" yaml:"influence" json:"influence"`
	Force      float64 `koanf:"force" yaml:"force" json:"force"`
	Spring     float64 `koanf:"spring" yaml:"spring" json:"spring"`
	Friction   float64 `koanf:"friction" yaml:"friction" json:"friction"`
	Saturation float64 `koanf:"saturation" yaml:"saturation" json:"saturation"`
}

// DefaultElasticConfig returns the footer grid parameters
func DefaultElasticConfig() ElasticConfig {
	return ElasticConfig{
		Spacing:    45,
		Influence:  180,
		Force:      5,
		Spring:     0.08,
		Friction:   0.85,
		Saturation: 30,
	}
}

// GridPoint is a mass on the elastic grid
type GridPoint struct {
	X, Y   float64
	OX, OY float64
	VX, VY float64
}

// Displacement is the distance from the rest position
func (p GridPoint) Displacement() float64 {
	return math.Hypot(p.X-p.OX, p.Y-p.OY)
}

// ElasticGrid is a mesh of springs pushed away by the pointer.
// Points are stored column-major with a stride of one column.
type ElasticGrid struct {
	cfg    ElasticConfig
	w, h   float64
	points []GridPoint
	stride int
	mx, my float64
}

// NewElasticGrid creates an elastic grid with the pointer parked far away.
func NewElasticGrid(cfg ElasticConfig) *ElasticGrid {
	return &ElasticGrid{cfg: cfg, mx: Far, my: Far}
}

// Resize rebuilds the mesh with a padding cell beyond every edge.
func (g *ElasticGrid) Resize(w, h float64) {
	g.w, g.h = w, h
	g.points = g.points[:0]
	g.stride = 0
	if g.cfg.Spacing <= 0 {
		return
	}
	cols := int(math.Ceil(w/g.cfg.Spacing)) + 2
	rows := int(math.Ceil(h/g.cfg.Spacing)) + 2
	g.stride = rows + 1
	for i := -1; i < cols; i++ {
		for j := -1; j < rows; j++ {
			x, y := float64(i)*g.cfg.Spacing, float64(j)*g.cfg.Spacing
			g.points = append(g.points, GridPoint{X: x, Y: y, OX: x, OY: y})
		}
	}
}

// Pointer tracks the pointer; leaving parks it out of range.
func (g *ElasticGrid) Pointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		g.mx, g.my = ev.X, ev.Y
	case PointerLeave:
		g.mx, g.my = Far, Far
	}
}

// Step applies pointer repulsion, the home spring and friction to every point.
func (g *ElasticGrid) Step() {
	c := g.cfg
	for i := range g.points {
		p := &g.points[i]
		dx, dy := g.mx-p.X, g.my-p.Y
		if dist := math.Hypot(dx, dy); dist < c.Influence {
			angle := math.Atan2(dy, dx)
			force := (c.Influence - dist) / c.Influence
			p.VX -= math.Cos(angle) * force * c.Force
			p.VY -= math.Sin(angle) * force * c.Force
		}

		p.VX += (p.OX - p.X) * c.Spring
		p.VY += (p.OY - p.Y) * c.Spring
		p.VX *= c.Friction
		p.VY *= c.Friction
		p.X += p.VX
		p.Y += p.VY
	}
}

// LineColor maps a displacement to the mesh stroke colour, purple at rest
// shading to gold once the displacement reaches saturation.
func LineColor(displacement, saturation float64) Color {
	intensity := 1.0
	if saturation > 0 {
		intensity = math.Min(1, displacement/saturation)
	}
	return Purple.Blend(Gold, intensity).WithAlpha(0.15 + 0.5*intensity)
}

// Draw strokes every right and bottom neighbour link.
func (g *ElasticGrid) Draw(s Surface) {
	s.Clear()
	n := len(g.points)
	for i, p := range g.points {
		c := LineColor(p.Displacement(), g.cfg.Saturation)
		if right := i + g.stride; right < n {
			q := g.points[right]
			s.StrokeLine(p.X, p.Y, q.X, q.Y, 1, c)
		}
		if bottom := i + 1; bottom < n && (i+1)%g.stride != 0 {
			q := g.points[bottom]
			s.StrokeLine(p.X, p.Y, q.X, q.Y, 1, c)
		}
	}
}

// Points exposes the mesh for inspection
func (g *ElasticGrid) Points() []GridPoint {
	return g.points
}

// Stride is the number of points per column
func (g *ElasticGrid) Stride() int {
	return g.stride
}

// MaxDisplacement returns the largest distance of any point from rest
func (g *ElasticGrid) MaxDisplacement() float64 {
	m := 0.0
	for _, p := range g.points {
		m = math.Max(m, p.Displacement())
	}
	return m
}
