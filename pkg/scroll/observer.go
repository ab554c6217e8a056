package scroll

// Section describes a pinned section's geometry in document coordinates
type Section struct {
	Top    float64
	Height float64
}

// Observer reports scroll fractions for a section. The browser client
// provides one backed by window scroll events; without one the section
// stays on its first item.
type Observer interface {
	Observe(measure func() (Section, float64), onUpdate func(p float64)) (stop func())
}

// NopObserver never reports progress
type NopObserver struct{}

// Observe implements Observer
func (NopObserver) Observe(func() (Section, float64), func(float64)) func() {
	return func() {}
}

// Controller tracks the active item of an N-item section and reports
// changes. It owns no platform resources beyond what the Observer holds.
type Controller struct {
	n        int
	progress Progress
	onChange func(Progress, []Bar)
	stop     func()
}

// NewController wires a section to an observer. A nil observer is replaced by
// NopObserver once, here, so callers never need to check for it.
func NewController(n int, obs Observer, measure func() (Section, float64), onChange func(Progress, []Bar)) *Controller {
	if obs == nil {
		obs = NopObserver{}
	}
	c := &Controller{n: n, onChange: onChange}
	c.stop = obs.Observe(measure, c.Update)
	return c
}

// Update applies a new scroll fraction
func (c *Controller) Update(p float64) {
	c.progress = Map(p, c.n)
	if c.onChange != nil {
		c.onChange(c.progress, Bars(c.progress, c.n))
	}
}

// Progress returns the last computed position
func (c *Controller) Progress() Progress {
	return c.progress
}

// Close releases the observer
func (c *Controller) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
