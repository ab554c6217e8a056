// Package scroll maps scroll position inside a tall pinned section to an
// active item and per-item progress bars.
package scroll

import "math"

// Progress is the position within an N-item section
type Progress struct {
	// Active is the highlighted item, in [0, N-1]
	Active int
	// Local is how far through the active item the reader is, in [0, 1]
	Local float64
}

// Map converts a section scroll fraction into the active item and local
// progress. Fractions outside [0,1] are clamped; at p >= 1 the last item is
// active with its bar full.
func Map(p float64, n int) Progress {
	if n <= 0 {
		return Progress{}
	}
	p = clamp01(p)
	if p >= 1 {
		return Progress{Active: n - 1, Local: 1}
	}
	raw := p * float64(n)
	floor := math.Floor(raw)
	active := min(int(floor), n-1)
	return Progress{Active: active, Local: clamp01(raw - floor)}
}

// Bar is the rendered state of one item's progress bar
type Bar struct {
	// Width as a fraction in [0, 1]
	Width   float64
	Visible bool
}

// Percent formats the width for a CSS width declaration
func (b Bar) Percent() float64 {
	return b.Width * 100
}

// Bars derives every progress bar from the current position: finished items
// are full and hidden, upcoming items are empty and hidden.
func Bars(pr Progress, n int) []Bar {
	bars := make([]Bar, n)
	for i := range bars {
		switch {
		case i == pr.Active:
			bars[i] = Bar{Width: clamp01(pr.Local), Visible: true}
		case i < pr.Active:
			bars[i] = Bar{Width: 1}
		default:
			bars[i] = Bar{}
		}
	}
	return bars
}

// Fraction is the section scroll fraction for a window scrolled to scrollY,
// given the section's document top, its height and the viewport height.
// Progress starts when the section top meets the viewport top and ends when
// the section bottom meets the viewport bottom.
func Fraction(scrollY, top, height, viewHeight float64) float64 {
	span := height - viewHeight
	if span <= 0 {
		if scrollY >= top {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - top) / span)
}

// Target is the window scroll offset that lands just past the start of item
// index, a tenth of one item's share into it.
func Target(index, n int, top, height, viewHeight float64) float64 {
	if n <= 0 {
		return top
	}
	start := top
	end := top + height - viewHeight
	return start + (end-start)*((float64(index)+0.1)/float64(n))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
