//go:build js && wasm

package live

import (
	"log/slog"
	"syscall/js"
	"time"
)

// Client handles WebSocket communication from the browser. Updates are
// swapped into the element carrying data-live-view="name".
type Client struct {
	url     string
	ws      js.Value
	logger  *slog.Logger
	lastSeq uint64
	retries int
	closed  bool
	funcs   []js.Func

	onUpdate  func(Update)
	onControl func(Control)
}

// MaxRetries bounds reconnect attempts after an unexpected close
const MaxRetries = 5

// NewClient creates a new live protocol client
func NewClient(url string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{url: url, logger: logger.With("component", "live")}
}

// OnUpdate sets the update handler. The default swaps the view's markup.
func (c *Client) OnUpdate(handler func(Update)) {
	c.onUpdate = handler
}

// OnControl sets the control handler
func (c *Client) OnControl(handler func(Control)) {
	c.onControl = handler
}

func (c *Client) fn(f func(this js.Value, args []js.Value) any) js.Func {
	jf := js.FuncOf(f)
	c.funcs = append(c.funcs, jf)
	return jf
}

func (c *Client) release() {
	for _, f := range c.funcs {
		f.Release()
	}
	c.funcs = nil
}

// Connect establishes the WebSocket connection
func (c *Client) Connect() {
	c.release()
	c.ws = js.Global().Get("WebSocket").New(c.url)
	c.ws.Set("binaryType", "arraybuffer")

	c.ws.Set("onopen", c.fn(func(this js.Value, args []js.Value) any {
		c.retries = 0
		c.send(EncodeControl(Control{Name: ControlHello, Seq: c.lastSeq}))
		return nil
	}))

	c.ws.Set("onmessage", c.fn(func(this js.Value, args []js.Value) any {
		buffer := js.Global().Get("Uint8Array").New(args[0].Get("data"))
		data := make([]byte, buffer.Get("length").Int())
		js.CopyBytesToGo(data, buffer)
		c.handle(data)
		return nil
	}))

	c.ws.Set("onclose", c.fn(func(this js.Value, args []js.Value) any {
		if c.closed || c.retries >= MaxRetries {
			return nil
		}
		c.retries++
		delay := time.Duration(c.retries) * time.Second
		c.logger.Debug("connection lost, reconnecting", "attempt", c.retries, "delay", delay)
		time.AfterFunc(delay, c.Connect)
		return nil
	}))
}

func (c *Client) handle(data []byte) {
	ft, err := FrameType(data)
	if err != nil {
		return
	}
	switch ft {
	case FrameHTML:
		u, err := DecodeUpdate(data)
		if err != nil {
			c.logger.Warn("bad update", "err", err)
			return
		}
		if u.Seq <= c.lastSeq {
			return
		}
		c.lastSeq = u.Seq
		if c.onUpdate != nil {
			c.onUpdate(u)
		} else {
			Swap(u)
		}
	case FrameControl:
		ctl, err := DecodeControl(data)
		if err != nil {
			return
		}
		if ctl.Name == ControlHello {
			// Sequence numbers restart with every server-side session
			c.lastSeq = 0
		}
		if ctl.Name == ControlError {
			c.logger.Warn("server rejected message", "err", ctl.Text)
		}
		if c.onControl != nil {
			c.onControl(ctl)
		}
	}
}

// Swap replaces the children of the view's container with the update markup.
// A focused named field inside the view keeps focus, caret and the text
// being typed, since the update may predate the latest keystrokes.
func Swap(u Update) {
	doc := js.Global().Get("document")
	target := doc.Call("querySelector", `[data-live-view="`+u.View+`"]`)
	if target.IsNull() {
		return
	}

	active := doc.Get("activeElement")
	name := ""
	if !active.IsNull() && target.Call("contains", active).Bool() {
		if n := active.Get("name"); n.Type() == js.TypeString {
			name = n.String()
		}
	}
	if name == "" {
		target.Set("innerHTML", u.HTML)
		return
	}

	value := active.Get("value")
	start, end := active.Get("selectionStart"), active.Get("selectionEnd")
	target.Set("innerHTML", u.HTML)

	field := target.Call("querySelector", `[name="`+name+`"]`)
	if field.IsNull() {
		return
	}
	field.Set("value", value)
	field.Call("focus")
	if start.Type() == js.TypeNumber && end.Type() == js.TypeNumber {
		field.Call("setSelectionRange", start, end)
	}
}

// Connected reports whether the socket is open
func (c *Client) Connected() bool {
	return !c.ws.IsUndefined() && !c.ws.IsNull() && c.ws.Get("readyState").Int() == 1
}

func (c *Client) send(data []byte) bool {
	if !c.Connected() {
		return false
	}
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	c.ws.Call("send", arr)
	return true
}

// SendEvent sends an event to the server. It reports false when the socket
// is not open, so callers can fall back to a plain form submission.
func (c *Client) SendEvent(evt Event) bool {
	return c.send(EncodeEvent(evt))
}

// Close closes the connection without reconnecting
func (c *Client) Close() {
	c.closed = true
	if !c.ws.IsUndefined() && !c.ws.IsNull() {
		c.ws.Call("close")
	}
}
