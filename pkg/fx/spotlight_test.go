package fx

import (
	"math"
	"testing"
)

func TestSpotlight_Mask(t *testing.T) {
	s := NewSpotlight(150)
	tests := []struct {
		ev   PointerEvent
		want string
	}{
		{Move(12, 40.5), "radial-gradient(circle 150px at 12px 40.5px, transparent 10%, black 70%)"},
		{Leave(), DefaultMask},
	}
	for _, tt := range tests {
		if got := s.Mask(tt.ev); got != tt.want {
			t.Errorf("Mask(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestScanPhase(t *testing.T) {
	tests := []struct {
		frame int
		want  float64
	}{
		{0, 0},
		{60, 0.5},
		{120, 1},
		{240, 0},
		{360, 1},
	}
	for _, tt := range tests {
		if got := ScanPhase(tt.frame, 240); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ScanPhase(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestConfigNew(t *testing.T) {
	cfg := DefaultConfig()
	for _, k := range Kinds {
		e, ok := cfg.New(k, NewRand(1))
		if !ok || e == nil {
			t.Errorf("New(%q) failed", k)
			continue
		}
		e.Resize(200, 100)
		e.Pointer(Move(50, 50))
		e.Step()
		var rec Recorder
		e.Draw(&rec)
		if len(rec.Ops) < 2 {
			t.Errorf("%s drew nothing", k)
		}
	}
	if _, ok := cfg.New("plasma", nil); ok {
		t.Error("unknown kind accepted")
	}
}

func TestColorCSS(t *testing.T) {
	if got := Purple.WithAlpha(0.15).CSS(); got != "rgba(147, 51, 234, 0.15)" {
		t.Errorf("CSS() = %q", got)
	}
	if got := Gold.WithAlpha(2).A; got != 1 {
		t.Errorf("alpha not clamped: %v", got)
	}
	if n := Cyan.WithAlpha(0.5).NRGBA(); n.A != 128 || n.G != 255 {
		t.Errorf("NRGBA() = %+v", n)
	}
}
