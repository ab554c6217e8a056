//go:build js && wasm

// Command client is the optional browser client. It animates the canvas
// effects, runs the hover and scroll interactions and connects live views.
// Every page works without it.
package main

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/google/uuid"

	"github.com/korden-tech/korden/pkg/debug"
	"github.com/korden-tech/korden/pkg/fx"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/scheduler"
	"github.com/korden-tech/korden/pkg/scroll"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
)

// app holds everything mounted on the page so pagehide can release it
type app struct {
	logger   *slog.Logger
	sched    *scheduler.Scheduler
	frames   chan struct{}
	smoother *scroll.Smoother
	client   *live.Client
	sections []*scroll.Controller
	funcs    []js.Func
	cleanup  []func()
	typing   *time.Timer
	done     chan struct{}
}

func main() {
	level := slog.LevelInfo
	if ls := window.Get("localStorage"); !ls.IsUndefined() && ls.Call("getItem", "korden:debug").String() == "1" {
		level = slog.LevelDebug
	}
	logger := debug.NewLogger(level)
	if level == slog.LevelDebug {
		debug.EnableLogging(logger)
	}

	a := &app{
		logger:   logger.With("component", "client"),
		sched:    scheduler.NewScheduler(),
		frames:   make(chan struct{}, 1),
		smoother: scroll.NewSmoother(60, 6, 1),
		done:     make(chan struct{}),
	}
	a.start()
	<-a.done
}

// on registers a listener and remembers it for teardown
func (a *app) on(target js.Value, event string, fn func(evt js.Value), passive bool) {
	jf := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	a.funcs = append(a.funcs, jf)
	opts := map[string]any{"passive": passive}
	target.Call("addEventListener", event, jf, opts)
	a.cleanup = append(a.cleanup, func() {
		target.Call("removeEventListener", event, jf, opts)
	})
}

func (a *app) start() {
	cfg := readConfig(a.logger)

	a.sched.SetDefaultErrorHandler(func(f *scheduler.Fiber, err any) bool {
		a.logger.Error("effect stopped", "effect", f.Name(), "err", err)
		return false
	})

	effects := a.mountEffects(cfg)
	a.mountSpotlights()
	a.mountAccordions()
	a.mountSections()
	a.connectLive()

	a.startFrames()
	a.sched.Start(scheduler.ChanDriver(a.frames))

	a.on(window, "pagehide", func(js.Value) { a.teardown() }, false)
	a.logger.Info("client started", "effects", effects, "sections", len(a.sections), "live", a.client != nil)
}

func readConfig(logger *slog.Logger) fx.Config {
	cfg := fx.DefaultConfig()
	node := document.Call("getElementById", "korden-fx")
	if node.IsNull() {
		return cfg
	}
	if err := json.Unmarshal([]byte(node.Get("textContent").String()), &cfg); err != nil {
		logger.Warn("bad effect config, using defaults", "err", err)
		return fx.DefaultConfig()
	}
	return cfg
}

// startFrames pumps requestAnimationFrame into the scheduler's driver.
// Frames are dropped while the scheduler is still busy with the last one.
func (a *app) startFrames() {
	var tick js.Func
	tick = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case <-a.done:
			return nil
		default:
		}
		if y, ok := a.smoother.Step(); ok {
			window.Call("scrollTo", 0, y)
		}
		select {
		case a.frames <- struct{}{}:
		default:
		}
		window.Call("requestAnimationFrame", tick)
		return nil
	})
	a.funcs = append(a.funcs, tick)
	window.Call("requestAnimationFrame", tick)
}

func (a *app) teardown() {
	select {
	case <-a.done:
		return
	default:
	}
	a.sched.Stop()
	if a.typing != nil {
		a.typing.Stop()
	}
	if a.client != nil {
		a.client.Close()
	}
	for _, c := range a.sections {
		c.Close()
	}
	for _, fn := range a.cleanup {
		fn()
	}
	close(a.done)
	for _, f := range a.funcs {
		f.Release()
	}
}

func each(selector string, fn func(el js.Value)) {
	list := document.Call("querySelectorAll", selector)
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}

// closest walks up from an event target, returning null for non-elements
func closest(target js.Value, selector string) js.Value {
	if target.IsNull() || target.IsUndefined() || target.Get("closest").IsUndefined() {
		return js.Null()
	}
	return target.Call("closest", selector)
}

func attr(el js.Value, name string) string {
	v := el.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (a *app) connectLive() {
	livePath := attr(document.Get("body"), "data-live-path")
	if livePath == "" {
		return
	}
	var views []string
	each("[data-live-view]", func(el js.Value) {
		views = append(views, attr(el, "data-live-view"))
	})
	if len(views) == 0 {
		return
	}

	loc := window.Get("location")
	params, _ := url.ParseQuery(strings.TrimPrefix(loc.Get("search").String(), "?"))
	params["view"] = views
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	endpoint := scheme + "//" + loc.Get("host").String() + strings.TrimSuffix(livePath, "/") + "/" + uuid.NewString() + "?" + params.Encode()

	a.client = live.NewClient(endpoint, a.logger)
	a.client.Connect()

	a.on(document, "click", a.onLiveClick, false)
	a.on(document, "submit", a.onLiveSubmit, false)
	a.on(document, "input", a.onLiveInput, true)
}

// liveEvent builds an event from a data-live-event element. data-field-*
// attributes become fields.
func liveEvent(el js.Value) (live.Event, bool) {
	typ, ok := live.ParseEventType(attr(el, "data-live-event"))
	if !ok {
		return live.Event{}, false
	}
	view := attr(el, "data-live-target")
	if view == "" {
		if region := closest(el, "[data-live-view]"); !region.IsNull() {
			view = attr(region, "data-live-view")
		}
	}
	if view == "" {
		return live.Event{}, false
	}

	fields := map[string]string{}
	attrs := el.Get("attributes")
	for i := 0; i < attrs.Length(); i++ {
		name := attrs.Index(i).Get("name").String()
		if rest, ok := strings.CutPrefix(name, "data-field-"); ok {
			fields[rest] = attrs.Index(i).Get("value").String()
		}
	}
	return live.Event{Type: typ, View: view, Fields: fields}, true
}

func (a *app) onLiveClick(evt js.Value) {
	el := closest(evt.Get("target"), "[data-live-event]")
	if el.IsNull() || el.Get("tagName").String() == "FORM" {
		return
	}
	ev, ok := liveEvent(el)
	if !ok || !a.client.SendEvent(ev) {
		// the link or form still works without the socket
		return
	}
	evt.Call("preventDefault")
	if href := attr(el, "href"); href != "" {
		window.Get("history").Call("replaceState", nil, "", href)
	}
}

func (a *app) onLiveSubmit(evt js.Value) {
	form := evt.Get("target")
	if attr(form, "data-live-event") == "" {
		return
	}
	ev, ok := formEvent(form)
	if !ok {
		return
	}
	if a.typing != nil {
		a.typing.Stop()
	}
	if a.client.SendEvent(ev) {
		evt.Call("preventDefault")
	}
}

// onLiveInput sends a form's event while the user types, once the form's
// data-live-debounce milliseconds pass without another keystroke.
func (a *app) onLiveInput(evt js.Value) {
	form := closest(evt.Get("target"), "form[data-live-debounce]")
	if form.IsNull() {
		return
	}
	ms, err := strconv.Atoi(attr(form, "data-live-debounce"))
	if err != nil || ms < 0 {
		return
	}
	if a.typing != nil {
		a.typing.Stop()
	}
	view := attr(form, "data-live-target")
	a.typing = time.AfterFunc(time.Duration(ms)*time.Millisecond, func() {
		// a swap may have replaced the form since the keystroke
		if !form.Get("isConnected").Bool() && view != "" {
			form = document.Call("querySelector", `form[data-live-target="`+view+`"][data-live-debounce]`)
			if form.IsNull() {
				return
			}
		}
		if ev, ok := formEvent(form); ok {
			a.client.SendEvent(ev)
		}
	})
}

// formEvent is liveEvent plus every named control of the form
func formEvent(form js.Value) (live.Event, bool) {
	ev, ok := liveEvent(form)
	if !ok {
		return live.Event{}, false
	}
	elements := form.Get("elements")
	for i := 0; i < elements.Length(); i++ {
		field := elements.Index(i)
		name := field.Get("name")
		if name.Type() != js.TypeString || name.String() == "" {
			continue
		}
		ev.Fields[name.String()] = field.Get("value").String()
	}
	return ev, true
}
