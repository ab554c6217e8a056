package fx

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with a fractional alpha, the way canvas fill styles express it.
type Color struct {
	R, G, B uint8
	A       float64
}

// Palette entries shared by the effects
var (
	Purple  = MustHex("#9333ea", 1)
	Gold    = MustHex("#f59e0b", 1)
	Cyan    = MustHex("#00ffff", 1)
	Magenta = MustHex("#ff00ff", 1)
	Lilac   = MustHex("#9696ff", 1)
	White   = MustHex("#ffffff", 1)
	Emerald = MustHex("#10b981", 1)
)

// MustHex parses a #rrggbb colour and panics on malformed input.
func MustHex(hex string, alpha float64) Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("fx: bad colour %q: %v", hex, err))
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// WithAlpha returns a copy of c with alpha replaced, clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Blend interpolates from c toward to in RGB space, keeping c's alpha.
func (c Color) Blend(to Color, t float64) Color {
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	dst := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	r, g, b := from.BlendRgb(dst, clamp01(t)).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

// CSS formats the colour as a canvas/CSS rgba() string.
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64) + ")"
}

// NRGBA converts to the image/color model used by native renderers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(c.A) * 255))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
