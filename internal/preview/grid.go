// Package preview runs the site's canvas effects in a terminal.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/korden-tech/korden/pkg/fx"
)

// Each terminal cell stands for this many surface pixels, roughly the
// aspect ratio of a monospace glyph.
const (
	CellW = 8.0
	CellH = 16.0
)

type cell struct {
	glyph rune
	color fx.Color
}

// Grid is an fx.Surface that rasterises onto terminal cells. When two draw
// calls hit the same cell the more opaque one wins.
type Grid struct {
	cols, rows int
	cells      []cell
}

// NewGrid returns an empty cols x rows grid
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize reallocates the grid, dropping its contents
func (g *Grid) Resize(cols, rows int) {
	g.cols, g.rows = max(cols, 0), max(rows, 0)
	g.cells = make([]cell, g.cols*g.rows)
}

// Cols returns the width in cells
func (g *Grid) Cols() int { return g.cols }

// Rows returns the height in cells
func (g *Grid) Rows() int { return g.rows }

// Size is the surface area in pixels the effect should be sized to
func (g *Grid) Size() (w, h float64) {
	return float64(g.cols) * CellW, float64(g.rows) * CellH
}

// At returns the glyph at a cell, or a space when it is empty or out of range
func (g *Grid) At(col, row int) (rune, fx.Color) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return ' ', fx.Color{}
	}
	c := g.cells[row*g.cols+col]
	if c.glyph == 0 {
		return ' ', fx.Color{}
	}
	return c.glyph, c.color
}

// Clear implements fx.Surface
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) plot(col, row int, glyph rune, c fx.Color) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows || c.A <= 0 {
		return
	}
	cur := &g.cells[row*g.cols+col]
	if cur.glyph != 0 && cur.color.A > c.A {
		return
	}
	cur.glyph, cur.color = glyph, c
}

// FillCircle implements fx.Surface. Circles smaller than a cell become a dot.
func (g *Grid) FillCircle(x, y, r float64, c fx.Color) {
	if r*2 < CellW {
		glyph := '·'
		if r >= 2 {
			glyph = '•'
		}
		g.plot(int(math.Floor(x/CellW)), int(math.Floor(y/CellH)), glyph, c)
		return
	}
	minC, maxC := int(math.Floor((x-r)/CellW)), int(math.Floor((x+r)/CellW))
	minR, maxR := int(math.Floor((y-r)/CellH)), int(math.Floor((y+r)/CellH))
	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			cx, cy := (float64(col)+0.5)*CellW, (float64(row)+0.5)*CellH
			if math.Hypot(cx-x, cy-y) <= r {
				g.plot(col, row, '●', c)
			}
		}
	}
}

// StrokeLine implements fx.Surface. Width is ignored; a cell is the thinnest line.
func (g *Grid) StrokeLine(x1, y1, x2, y2, _ float64, c fx.Color) {
	dx, dy := (x2-x1)/CellW, (y2-y1)/CellH
	glyph := lineGlyph(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.plot(int(math.Floor((x1+(x2-x1)*t)/CellW)), int(math.Floor((y1+(y2-y1)*t)/CellH)), glyph, c)
	}
}

// lineGlyph picks a box-drawing character for a direction in cell units
func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax/2:
		return '─'
	case ax <= ay/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

var black = fx.Color{A: 1}

// hex is the colour as seen on a black terminal: alpha darkens it
func hex(c fx.Color) string {
	shown := black.Blend(c, c.A)
	return fmt.Sprintf("#%02x%02x%02x", shown.R, shown.G, shown.B)
}

// Render draws the grid, one styled run per stretch of equal colour
func (g *Grid) Render() string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		color := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if color == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < g.cols; col++ {
			glyph, c := g.At(col, row)
			next := ""
			if glyph != ' ' {
				next = hex(c)
			}
			if next != color {
				flush()
				color = next
			}
			run.WriteRune(glyph)
		}
		flush()
	}
	return b.String()
}
