package scheduler

import "time"

// Driver paces the frame loop
type Driver interface {
	// Wait blocks until the next frame is due. It returns false once stop
	// is closed, after releasing any resources it holds.
	Wait(stop <-chan struct{}) bool
}

// TickerDriver fires at a fixed rate
type TickerDriver struct {
	ticker *time.Ticker
}

// NewTickerDriver returns a driver firing fps times per second
func NewTickerDriver(fps int) *TickerDriver {
	if fps <= 0 {
		fps = 60
	}
	return &TickerDriver{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait implements Driver
func (d *TickerDriver) Wait(stop <-chan struct{}) bool {
	select {
	case <-d.ticker.C:
		return true
	case <-stop:
		d.ticker.Stop()
		return false
	}
}

// ChanDriver fires whenever a value arrives on the channel, e.g. from a
// display-refresh callback. A closed channel ends the loop.
type ChanDriver <-chan struct{}

// Wait implements Driver
func (d ChanDriver) Wait(stop <-chan struct{}) bool {
	select {
	case _, ok := <-d:
		return ok
	case <-stop:
		return false
	}
}
