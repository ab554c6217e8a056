package fx

import "math"

// ScannerConfig parameterises the quality-assurance scan beam
type ScannerConfig struct {
	PeriodFrames int     `koanf:"period_frames" yaml:"period_frames" json:"periodFrames"`
	Trail        float64 `koanf:"trail" yaml:"trail" json:"trail"`
}

// DefaultScannerConfig sweeps once every four seconds at 60fps
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{PeriodFrames: 240, Trail: 128}
}

// ScanPhase maps a frame number to the beam position in [0,1]: down and back
// up once per period with ease-in-out at both ends.
func ScanPhase(frame, period int) float64 {
	if period <= 0 {
		return 0
	}
	t := float64(frame%period) / float64(period)
	return (1 - math.Cos(2*math.Pi*t)) / 2
}

// Scanner draws a horizontal beam with a fading trail sweeping the surface.
type Scanner struct {
	cfg   ScannerConfig
	frame int
	w, h  float64
}

// NewScanner creates a scan beam effect
func NewScanner(cfg ScannerConfig) *Scanner {
	return &Scanner{cfg: cfg}
}

// Resize implements Effect
func (s *Scanner) Resize(w, h float64) {
	s.w, s.h = w, h
	s.frame = 0
}

// Pointer implements Effect; the beam ignores the pointer.
func (s *Scanner) Pointer(PointerEvent) {}

// Step implements Effect
func (s *Scanner) Step() {
	s.frame++
}

// BeamY is the current beam height
func (s *Scanner) BeamY() float64 {
	return ScanPhase(s.frame, s.cfg.PeriodFrames) * s.h
}

// Draw implements Effect
func (s *Scanner) Draw(dst Surface) {
	dst.Clear()
	y := s.BeamY()
	if g, ok := dst.(Glower); ok {
		g.SetGlow(20, Emerald)
		dst.StrokeLine(0, y, s.w, y, 2, Emerald)
		g.SetGlow(0, Emerald)
	} else {
		dst.StrokeLine(0, y, s.w, y, 2, Emerald)
	}
	for off := 8.0; off < s.cfg.Trail; off += 8 {
		dst.StrokeLine(0, y+off, s.w, y+off, 1, Emerald.WithAlpha(0.2*(1-off/s.cfg.Trail)))
	}
}
