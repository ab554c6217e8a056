package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/korden-tech/korden/pkg/fx"
)

// background matches the site's page colour
var background = color.NRGBA{R: 5, G: 5, B: 5, A: 255}

// imageSurface draws onto the ebiten screen for the duration of one Draw call
type imageSurface struct {
	dst  *ebiten.Image
	glow float64
	halo fx.Color
}

func (s *imageSurface) Clear() {
	s.dst.Fill(background)
}

func (s *imageSurface) FillCircle(x, y, r float64, c fx.Color) {
	if s.glow > 0 {
		// vector has no blur; a faint wider disc stands in for the shadow
		vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r+s.glow/2), s.halo.WithAlpha(s.halo.A*0.25).NRGBA(), true)
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

func (s *imageSurface) StrokeLine(x1, y1, x2, y2, width float64, c fx.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c.NRGBA(), true)
}

func (s *imageSurface) SetGlow(blur float64, c fx.Color) {
	s.glow, s.halo = blur, c
}

// game runs one effect at a time, rebuilding it when the window changes size
type game struct {
	cfg    fx.Config
	rng    *rand.Rand
	index  int
	effect fx.Effect
	w, h   int
	inside bool
	paused bool
	debug  bool
	surf   imageSurface
}

func newGame(cfg fx.Config, kind fx.Kind, seed uint64) *game {
	g := &game{cfg: cfg, rng: fx.NewRand(seed)}
	g.show(slices.Index(fx.Kinds, kind))
	return g
}

func (g *game) show(index int) {
	g.index = (index + len(fx.Kinds)) % len(fx.Kinds)
	g.effect, _ = g.cfg.New(fx.Kinds[g.index], g.rng)
	if g.w > 0 && g.h > 0 {
		g.effect.Resize(float64(g.w), float64(g.h))
	}
	ebiten.SetWindowTitle("kordenfx: " + string(fx.Kinds[g.index]))
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.show(g.index + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.w && y < g.h
	switch {
	case inside:
		g.effect.Pointer(fx.Move(float64(x), float64(y)))
	case g.inside:
		g.effect.Pointer(fx.Leave())
	}
	g.inside = inside

	if !g.paused {
		g.effect.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surf.dst = screen
	g.surf.glow = 0
	g.effect.Draw(&g.surf)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %dx%d  TPS %.0f  FPS %.0f",
			fx.Kinds[g.index], g.w, g.h, ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.effect.Resize(float64(g.w), float64(g.h))
	}
	return outsideWidth, outsideHeight
}
