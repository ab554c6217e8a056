//go:build js && wasm

package main

import (
	"syscall/js"
	"testing"
)

func fakeCanvas(getContext any) js.Value {
	canvas := js.Global().Get("Object").New()
	canvas.Set("clientWidth", 300)
	canvas.Set("clientHeight", 150)
	if getContext != nil {
		canvas.Set("getContext", getContext)
	}
	return canvas
}

func TestNewCanvasSurface_NoContext(t *testing.T) {
	window = js.Global()

	null := js.FuncOf(func(js.Value, []js.Value) any { return js.Null() })
	defer null.Release()
	undef := js.FuncOf(func(js.Value, []js.Value) any { return js.Undefined() })
	defer undef.Release()

	tests := []struct {
		name   string
		canvas js.Value
	}{
		{"no getContext", fakeCanvas(nil)},
		{"null context", fakeCanvas(null)},
		{"undefined context", fakeCanvas(undef)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s, ok := newCanvasSurface(tt.canvas); ok || s != nil {
				t.Errorf("newCanvasSurface() = %v, %v, want nil, false", s, ok)
			}
		})
	}
}

func TestNewCanvasSurface_Fits(t *testing.T) {
	window = js.Global()
	window.Set("devicePixelRatio", 2)
	defer window.Delete("devicePixelRatio")

	var transform []js.Value
	ctx := js.Global().Get("Object").New()
	setTransform := js.FuncOf(func(_ js.Value, args []js.Value) any {
		transform = args
		return nil
	})
	defer setTransform.Release()
	ctx.Set("setTransform", setTransform)

	get := js.FuncOf(func(js.Value, []js.Value) any { return ctx })
	defer get.Release()
	canvas := fakeCanvas(get)

	s, ok := newCanvasSurface(canvas)
	if !ok {
		t.Fatal("newCanvasSurface() failed with a usable context")
	}
	if s.w != 300 || s.h != 150 {
		t.Errorf("size = %vx%v, want 300x150", s.w, s.h)
	}
	if got := canvas.Get("width").Int(); got != 600 {
		t.Errorf("backing width = %d, want 600", got)
	}
	if len(transform) == 0 || transform[0].Float() != 2 {
		t.Errorf("setTransform args = %v", transform)
	}
}
