package fx

import (
	"math"
	"testing"
)

func quietRipple() RippleConfig {
	cfg := DefaultRippleConfig()
	cfg.AmbientEvery = 0
	return cfg
}

func TestRippleField_DecayMonotonic(t *testing.T) {
	f := NewRippleField(quietRipple(), NewRand(1))
	f.Resize(800, 600)
	f.Pointer(Move(400, 300))

	if got := len(f.Ripples()); got != 1 {
		t.Fatalf("ripples = %d, want 1", got)
	}

	prev := f.Ripples()[0]
	frames := 0
	for len(f.Ripples()) > 0 {
		f.Step()
		frames++
		if len(f.Ripples()) == 0 {
			break
		}
		cur := f.Ripples()[0]
		if cur.Strength >= prev.Strength {
			t.Fatalf("frame %d: strength %v did not decrease from %v", frames, cur.Strength, prev.Strength)
		}
		if cur.Radius <= prev.Radius {
			t.Fatalf("frame %d: radius %v did not grow from %v", frames, cur.Radius, prev.Radius)
		}
		if cur.Strength <= 0 {
			t.Fatalf("frame %d: ripple kept with strength %v", frames, cur.Strength)
		}
		prev = cur
		if frames > 100 {
			t.Fatal("ripple never expired")
		}
	}
	if frames != 34 {
		t.Errorf("ripple lived %d frames, want 34", frames)
	}
}

func TestRippleField_Cap(t *testing.T) {
	cfg := DefaultRippleConfig()
	cfg.AmbientChance = -1 // every ambient tick fires
	cfg.AmbientEvery = 1
	f := NewRippleField(cfg, NewRand(7))
	f.Resize(1920, 1080)

	x := 0.0
	for frame := 0; frame < 500; frame++ {
		for k := 0; k < 5; k++ {
			x += 31
			f.Pointer(Move(math.Mod(x, 1920), float64(frame%1080)))
		}
		f.Step()
		if n := len(f.Ripples()); n > cfg.MaxRipples {
			t.Fatalf("frame %d: %d ripples active, cap is %d", frame, n, cfg.MaxRipples)
		}
	}
}

func TestRippleField_PointerThreshold(t *testing.T) {
	tests := []struct {
		name    string
		moves   [][2]float64
		ripples int
	}{
		{"below threshold", [][2]float64{{10, 10}, {20, 20}}, 0},
		{"past threshold", [][2]float64{{40, 0}}, 1},
		{"each sample compared to last accepted", [][2]float64{{40, 0}, {60, 0}, {80, 0}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewRippleField(quietRipple(), NewRand(1))
			f.Resize(400, 400)
			for _, m := range tt.moves {
				f.Pointer(Move(m[0], m[1]))
			}
			if got := len(f.Ripples()); got != tt.ripples {
				t.Errorf("ripples = %d, want %d", got, tt.ripples)
			}
		})
	}
}

func TestRippleField_LastSampleAdvancesWhenCapped(t *testing.T) {
	cfg := quietRipple()
	cfg.MaxRipples = 1
	cfg.Decay = 0.6
	f := NewRippleField(cfg, NewRand(1))
	f.Resize(400, 400)
	f.Pointer(Move(100, 0))
	f.Pointer(Move(200, 0)) // dropped by the cap, but still the new reference sample
	f.Step()
	f.Step()
	if got := len(f.Ripples()); got != 0 {
		t.Fatalf("ripples = %d, want 0 after decay", got)
	}
	f.Pointer(Move(210, 0))
	if got := len(f.Ripples()); got != 0 {
		t.Errorf("ripples = %d, want 0 (move of 10px from last sample)", got)
	}
	f.Pointer(Move(260, 0))
	if got := len(f.Ripples()); got != 1 {
		t.Errorf("ripples = %d, want 1", got)
	}
}

func TestRippleField_ResizeRebuilds(t *testing.T) {
	f := NewRippleField(quietRipple(), NewRand(1))
	f.Resize(100, 60)
	// ceil(100/40)=3 -> 4 columns, ceil(60/40)=2 -> 3 rows
	if got := len(f.Dots()); got != 12 {
		t.Errorf("dots = %d, want 12", got)
	}
	f.Pointer(Move(50, 50))
	f.Resize(200, 200)
	if got := len(f.Ripples()); got != 0 {
		t.Errorf("ripples after resize = %d, want 0", got)
	}
	if got := len(f.Dots()); got != 36 {
		t.Errorf("dots = %d, want 36", got)
	}
}

func TestRippleField_Ambient(t *testing.T) {
	cfg := DefaultRippleConfig()
	cfg.AmbientChance = -1
	f := NewRippleField(cfg, NewRand(3))
	f.Resize(400, 400)
	for i := 0; i < 59; i++ {
		f.Step()
	}
	if len(f.Ripples()) != 0 {
		t.Fatal("ambient ripple before frame 60")
	}
	f.Step()
	r := f.Ripples()
	if len(r) != 1 {
		t.Fatalf("ripples = %d, want 1", len(r))
	}
	if r[0].Strength != cfg.AmbientStrength || r[0].Radius != 0 {
		t.Errorf("new ambient ripple = %+v, want strength %v at radius 0", r[0], cfg.AmbientStrength)
	}

	f.Step()
	r = f.Ripples()
	if want := cfg.AmbientStrength - cfg.Decay; len(r) != 1 || math.Abs(r[0].Strength-want) > 1e-9 || r[0].Radius != cfg.Speed {
		t.Errorf("after one step = %+v, want strength %v at radius %v", r, want, cfg.Speed)
	}
}

func TestRippleField_Influence(t *testing.T) {
	f := NewRippleField(quietRipple(), NewRand(1))
	f.Resize(400, 400)
	f.ripples = []Ripple{{X: 0, Y: 0, Radius: 100, Strength: 1}}

	tests := []struct {
		x, y float64
		want float64
	}{
		{100, 0, 1},
		{125, 0, 0.5},
		{150, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := f.Influence(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Influence(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	f.ripples = append(f.ripples, Ripple{X: 0, Y: 0, Radius: 100, Strength: 1})
	if got := f.Influence(100, 0); got != 1 {
		t.Errorf("overlapping influence = %v, want capped at 1", got)
	}
}

func TestDotStyle(t *testing.T) {
	tests := []struct {
		influence float64
		size      float64
		color     Color
	}{
		{0, 1.5, Purple.WithAlpha(0.15)},
		{0.1, 1.8, Purple.WithAlpha(0.15)},
		{0.3, 2.4, Purple.WithAlpha(0.5)},
		{0.8, 3.9, Gold.WithAlpha(0.8)},
		{1, 4.5, Gold.WithAlpha(1)},
	}
	for _, tt := range tests {
		size, c := DotStyle(tt.influence)
		if math.Abs(size-tt.size) > 1e-9 {
			t.Errorf("DotStyle(%v) size = %v, want %v", tt.influence, size, tt.size)
		}
		if c.CSS() != tt.color.CSS() {
			t.Errorf("DotStyle(%v) color = %s, want %s", tt.influence, c.CSS(), tt.color.CSS())
		}
	}
}

func TestRippleField_Draw(t *testing.T) {
	f := NewRippleField(quietRipple(), NewRand(1))
	f.Resize(80, 80)
	var rec Recorder
	f.Draw(&rec)
	if rec.Count(OpClear) != 1 {
		t.Error("Draw did not clear the surface")
	}
	if got := rec.Count(OpCircle); got != len(f.Dots()) {
		t.Errorf("circles = %d, want %d", got, len(f.Dots()))
	}
}

func BenchmarkRippleField_Frame(b *testing.B) {
	f := NewRippleField(DefaultRippleConfig(), NewRand(1))
	f.Resize(1920, 1080)
	for i := 0; i < 10; i++ {
		f.Pointer(Move(float64(i*100), float64(i*50)))
	}
	var rec Recorder
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.Step()
		f.Draw(&rec)
	}
}
