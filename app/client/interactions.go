//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/korden-tech/korden/pkg/scroll"
)

func setActive(el js.Value, on bool) {
	el.Call("setAttribute", "data-active", strconv.FormatBool(on))
}

// mountAccordions opens an item on hover or click and closes every item when
// the pointer leaves the group.
func (a *app) mountAccordions() {
	each("[data-accordion]", func(group js.Value) {
		items := group.Call("querySelectorAll", "[data-accordion-item]")
		open := func(target js.Value) {
			for i := 0; i < items.Length(); i++ {
				item := items.Index(i)
				setActive(item, target.Truthy() && item.Equal(target))
			}
		}
		for i := 0; i < items.Length(); i++ {
			item := items.Index(i)
			a.on(item, "mouseenter", func(js.Value) { open(item) }, true)
			a.on(item, "click", func(evt js.Value) {
				if !closest(evt.Get("target"), "a[href^='/?feature=']").IsNull() {
					evt.Call("preventDefault")
				}
				open(item)
			}, false)
		}
		a.on(group, "mouseleave", func(js.Value) { open(js.Null()) }, true)
	})
}

// windowObserver reports a section's scroll fraction on window scroll and resize
type windowObserver struct {
	app *app
}

func (o windowObserver) Observe(measure func() (scroll.Section, float64), onUpdate func(p float64)) func() {
	update := func(js.Value) {
		sec, view := measure()
		onUpdate(scroll.Fraction(window.Get("scrollY").Float(), sec.Top, sec.Height, view))
	}
	o.app.on(window, "scroll", update, true)
	o.app.on(window, "resize", update, true)
	update(js.Undefined())
	return func() {}
}

// mountSections drives each pinned scroll section: the active card, its
// progress bar and the matching display panel follow the scroll position.
// Clicking a card glides to it.
func (a *app) mountSections() {
	each("[data-scroll-section]", func(section js.Value) {
		n, err := strconv.Atoi(attr(section, "data-scroll-count"))
		if err != nil || n <= 0 {
			return
		}
		items := make([]js.Value, n)
		bars := make([]js.Value, n)
		panels := make([]js.Value, n)
		for i := 0; i < n; i++ {
			items[i] = section.Call("querySelector", fmt.Sprintf(`[data-scroll-item="%d"]`, i))
			bars[i] = section.Call("querySelector", fmt.Sprintf(`[data-scroll-bar="%d"]`, i))
			panels[i] = section.Call("querySelector", fmt.Sprintf(`[data-scroll-panel="%d"]`, i))
		}

		measure := func() (scroll.Section, float64) {
			rect := section.Call("getBoundingClientRect")
			return scroll.Section{
				Top:    rect.Get("top").Float() + window.Get("scrollY").Float(),
				Height: rect.Get("height").Float(),
			}, window.Get("innerHeight").Float()
		}

		render := func(pr scroll.Progress, state []scroll.Bar) {
			for i := 0; i < n; i++ {
				active := i == pr.Active
				if !items[i].IsNull() {
					setActive(items[i], active)
				}
				if !panels[i].IsNull() {
					setActive(panels[i], active)
				}
				if !bars[i].IsNull() {
					style := bars[i].Get("style")
					style.Set("width", fmt.Sprintf("%g%%", state[i].Percent()))
					opacity := "0"
					if state[i].Visible {
						opacity = "1"
					}
					style.Set("opacity", opacity)
				}
			}
		}

		c := scroll.NewController(n, windowObserver{app: a}, measure, render)
		a.sections = append(a.sections, c)

		for i := 0; i < n; i++ {
			if items[i].IsNull() {
				continue
			}
			a.on(items[i], "click", func(js.Value) {
				sec, view := measure()
				a.smoother.Start(window.Get("scrollY").Float(), scroll.Target(i, n, sec.Top, sec.Height, view))
			}, true)
		}
	})

	// A manual scroll gesture takes over from a glide
	cancel := func(js.Value) { a.smoother.Cancel() }
	a.on(window, "wheel", cancel, true)
	a.on(window, "touchstart", cancel, true)
}
