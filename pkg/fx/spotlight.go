package fx

import (
	"fmt"
	"strconv"
)

// DefaultMask keeps the filled title layer fully visible
const DefaultMask = "linear-gradient(to right, black, black)"

// Spotlight computes the mask that punches a hole in the filled hero title
// so the outlined layer shows through around the pointer.
type Spotlight struct {
	Radius float64
}

// NewSpotlight returns a spotlight of the given radius in pixels
func NewSpotlight(radius float64) Spotlight {
	return Spotlight{Radius: radius}
}

// Mask returns the CSS mask-image for a pointer event relative to the title box.
func (s Spotlight) Mask(ev PointerEvent) string {
	if ev.Kind == PointerLeave {
		return DefaultMask
	}
	return fmt.Sprintf("radial-gradient(circle %spx at %spx %spx, transparent 10%%, black 70%%)",
		px(s.Radius), px(ev.X), px(ev.Y))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
