//go:build js && wasm

package main

import (
	"math"
	"strconv"
	"syscall/js"

	"github.com/korden-tech/korden/pkg/fx"
)

// canvasSurface draws onto a 2D canvas context in CSS pixels
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
	w, h   float64
}

// newCanvasSurface returns false when the element has no 2D context, in
// which case the effect is skipped and the page keeps its static look.
func newCanvasSurface(canvas js.Value) (*canvasSurface, bool) {
	if canvas.Get("getContext").Type() != js.TypeFunction {
		return nil, false
	}
	ctx := canvas.Call("getContext", "2d")
	if !usable(ctx) {
		return nil, false
	}
	s := &canvasSurface{canvas: canvas, ctx: ctx}
	s.fit()
	return s, true
}

func usable(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

// fit sizes the backing store for the device pixel ratio
func (s *canvasSurface) fit() {
	dpr := 1.0
	if v := window.Get("devicePixelRatio"); v.Type() == js.TypeNumber && v.Float() > 0 {
		dpr = v.Float()
	}
	s.w = s.canvas.Get("clientWidth").Float()
	s.h = s.canvas.Get("clientHeight").Float()
	s.canvas.Set("width", math.Round(s.w*dpr))
	s.canvas.Set("height", math.Round(s.h*dpr))
	s.ctx.Call("setTransform", dpr, 0, 0, dpr, 0, 0)
}

func (s *canvasSurface) Clear() {
	s.ctx.Call("clearRect", 0, 0, s.w, s.h)
}

func (s *canvasSurface) FillCircle(x, y, r float64, c fx.Color) {
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	s.ctx.Set("fillStyle", c.CSS())
	s.ctx.Call("fill")
}

func (s *canvasSurface) StrokeLine(x1, y1, x2, y2, width float64, c fx.Color) {
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x1, y1)
	s.ctx.Call("lineTo", x2, y2)
	s.ctx.Set("lineWidth", width)
	s.ctx.Set("strokeStyle", c.CSS())
	s.ctx.Call("stroke")
}

func (s *canvasSurface) SetGlow(blur float64, c fx.Color) {
	s.ctx.Set("shadowBlur", blur)
	s.ctx.Set("shadowColor", c.CSS())
}

// pointer converts a mouse event to coordinates relative to el
func pointer(el, evt js.Value) fx.PointerEvent {
	rect := el.Call("getBoundingClientRect")
	return fx.Move(
		evt.Get("clientX").Float()-rect.Get("left").Float(),
		evt.Get("clientY").Float()-rect.Get("top").Float(),
	)
}

// mountEffects starts an effect on every canvas[data-fx]. Pointer input is
// taken from the canvas's parent since the canvas itself ignores the mouse.
func (a *app) mountEffects(cfg fx.Config) int {
	mounted := 0
	each("canvas[data-fx]", func(canvas js.Value) {
		kind := fx.Kind(attr(canvas, "data-fx"))
		effect, ok := cfg.New(kind, fx.NewRand(0))
		if !ok {
			a.logger.Warn("unknown effect", "kind", kind)
			return
		}
		surface, ok := newCanvasSurface(canvas)
		if !ok {
			a.logger.Debug("canvas has no 2d context", "kind", kind)
			return
		}
		fiber := a.sched.Mount(string(kind), effect, surface, surface.w, surface.h)
		a.cleanup = append(a.cleanup, func() { a.sched.Unmount(fiber) })
		mounted++

		host := canvas.Get("parentElement")
		a.on(host, "pointermove", func(evt js.Value) {
			a.sched.Post(fiber, pointer(canvas, evt))
		}, true)
		a.on(host, "pointerleave", func(js.Value) {
			a.sched.Post(fiber, fx.Leave())
		}, true)

		resize := func() {
			surface.fit()
			a.sched.Resize(fiber, surface.w, surface.h)
		}
		ctor := js.Global().Get("ResizeObserver")
		if ctor.Type() != js.TypeFunction {
			a.on(window, "resize", func(js.Value) { resize() }, true)
			return
		}
		resized := js.FuncOf(func(this js.Value, args []js.Value) any {
			resize()
			return nil
		})
		a.funcs = append(a.funcs, resized)
		observer := ctor.New(resized)
		observer.Call("observe", canvas)
		a.cleanup = append(a.cleanup, func() { observer.Call("disconnect") })
	})
	return mounted
}

// mountSpotlights moves the hole in each hero title's filled layer with the pointer
func (a *app) mountSpotlights() {
	each("[data-spotlight]", func(title js.Value) {
		radius, err := strconv.ParseFloat(attr(title, "data-spotlight"), 64)
		if err != nil {
			return
		}
		fill := title.Call("querySelector", "[data-spotlight-fill]")
		if fill.IsNull() {
			return
		}
		spot := fx.NewSpotlight(radius)
		apply := func(ev fx.PointerEvent) {
			mask := spot.Mask(ev)
			style := fill.Get("style")
			style.Call("setProperty", "-webkit-mask-image", mask)
			style.Call("setProperty", "mask-image", mask)
		}
		a.on(title, "pointermove", func(evt js.Value) { apply(pointer(title, evt)) }, true)
		a.on(title, "pointerleave", func(js.Value) { apply(fx.Leave()) }, true)
	})
}
