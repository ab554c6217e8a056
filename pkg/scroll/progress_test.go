package scroll

import (
	"math"
	"testing"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		n      int
		active int
		local  float64
	}{
		{"start", 0, 4, 0, 0},
		{"mid second item", 0.37, 4, 1, 0.48},
		{"exact boundary", 0.5, 4, 2, 0},
		{"almost end", 0.999, 4, 3, 0.996},
		{"end pins last bar full", 1, 4, 3, 1},
		{"past end", 1.3, 4, 3, 1},
		{"before start", -0.2, 4, 0, 0},
		{"single item", 0.6, 1, 0, 0.6},
		{"no items", 0.5, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.p, tt.n)
			if got.Active != tt.active {
				t.Errorf("Active = %d, want %d", got.Active, tt.active)
			}
			if math.Abs(got.Local-tt.local) > 1e-9 {
				t.Errorf("Local = %v, want %v", got.Local, tt.local)
			}
		})
	}
}

func TestBars(t *testing.T) {
	bars := Bars(Progress{Active: 2, Local: 0.25}, 4)
	want := []Bar{
		{Width: 1, Visible: false},
		{Width: 1, Visible: false},
		{Width: 0.25, Visible: true},
		{Width: 0, Visible: false},
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("bar %d = %+v, want %+v", i, bars[i], want[i])
		}
	}
	if got := bars[2].Percent(); got != 25 {
		t.Errorf("Percent() = %v, want 25", got)
	}
}

func TestTarget(t *testing.T) {
	// section at 1000, 400vh tall on a 900px viewport
	top, height, view := 1000.0, 3600.0, 900.0
	tests := []struct {
		index int
		want  float64
	}{
		{0, 1000 + 2700*0.025},
		{1, 1000 + 2700*0.275},
		{3, 1000 + 2700*0.775},
	}
	for _, tt := range tests {
		got := Target(tt.index, 4, top, height, view)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Target(%d) = %v, want %v", tt.index, got, tt.want)
		}
		// landing there must activate the clicked item
		if pr := Map(Fraction(got, top, height, view), 4); pr.Active != tt.index {
			t.Errorf("Target(%d) activates item %d", tt.index, pr.Active)
		}
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		scrollY float64
		want    float64
	}{
		{0, 0},
		{1000, 0},
		{2350, 0.5},
		{3700, 1},
		{9000, 1},
	}
	for _, tt := range tests {
		if got := Fraction(tt.scrollY, 1000, 3600, 900); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Fraction(%v) = %v, want %v", tt.scrollY, got, tt.want)
		}
	}
	if got := Fraction(50, 100, 500, 800); got != 0 {
		t.Errorf("short section before top = %v, want 0", got)
	}
}

type fakeObserver struct {
	update  func(float64)
	stopped bool
}

func (f *fakeObserver) Observe(_ func() (Section, float64), onUpdate func(float64)) func() {
	f.update = onUpdate
	return func() { f.stopped = true }
}

func TestController(t *testing.T) {
	obs := &fakeObserver{}
	var changes []Progress
	c := NewController(4, obs, nil, func(p Progress, bars []Bar) {
		changes = append(changes, p)
		if len(bars) != 4 {
			t.Errorf("bars = %d, want 4", len(bars))
		}
	})
	obs.update(0.37)
	obs.update(1)
	if len(changes) != 2 || changes[0].Active != 1 || changes[1].Active != 3 {
		t.Errorf("changes = %+v", changes)
	}
	c.Close()
	c.Close()
	if !obs.stopped {
		t.Error("Close did not stop the observer")
	}
}

func TestController_NilObserver(t *testing.T) {
	c := NewController(4, nil, nil, nil)
	if c.Progress().Active != 0 {
		t.Errorf("Active = %d", c.Progress().Active)
	}
	c.Close()
}

func TestSmoother(t *testing.T) {
	s := NewSmoother(60, 6, 1)
	s.Start(0, 1200)
	var pos float64
	frames := 0
	for s.Active() {
		var moving bool
		pos, moving = s.Step()
		if !moving {
			t.Fatal("Step reported idle while active")
		}
		if pos > 1200.5 {
			t.Fatalf("critically damped glide overshot: %v", pos)
		}
		if frames++; frames > 600 {
			t.Fatal("glide did not settle")
		}
	}
	if pos != 1200 {
		t.Errorf("final offset = %v, want 1200", pos)
	}
	if _, moving := s.Step(); moving {
		t.Error("Step moving after settle")
	}

	s.Start(0, 500)
	s.Step()
	s.Cancel()
	if s.Active() {
		t.Error("Cancel left glide active")
	}
}
