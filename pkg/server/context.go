package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

var (
	// ErrStop is a sentinel error used by middleware to stop the chain
	ErrStop = errors.New("korden: stop middleware chain")
)

// Stop returns the sentinel error to halt middleware chain execution
func Stop() error {
	return ErrStop
}

// MaxBodyBytes bounds request bodies read through Bind
const MaxBodyBytes = 1 << 20

// Ctx is the canonical interface passed through routing, middleware, and page handlers
type Ctx interface {
	// === Request ===
	Request() *http.Request   // raw request pointer (read-only)
	Context() context.Context // request context
	Path() string             // path without query string
	Method() string           // GET, POST, etc.
	Query() url.Values        // parsed query params
	Param(key string) string  // route param, panics if missing
	Form() (url.Values, error)
	Bind(v any) error // decode a JSON or form body into v

	// === Response ===
	Status(code int)                 // set HTTP status (default 200)
	StatusCode() int                 // current status
	Header() http.Header             // writeable headers
	SetHeader(key, val string)       // convenience
	Redirect(url string, code int)   // sets 30x + Location header
	JSON(code int, v any) error      // serialise & write JSON
	Text(code int, msg string) error // write text/plain
	Written() bool                   // a response body has been written

	// === Page ===
	SetTitle(title string) // document title for the layout
	Title() string
	NoCache() // keep this response out of the page cache

	// === Internal ===
	Done() <-chan struct{} // cancellation signal
	Logger() *slog.Logger  // structured logger
}

// ctxImpl is the internal implementation of Ctx
type ctxImpl struct {
	req           *http.Request
	w             http.ResponseWriter
	params        map[string]string
	statusCode    int
	logger        *slog.Logger
	title         string
	noCache       bool
	err           error
	headerWritten bool
	mu            sync.RWMutex
}

// NewContext creates a new context for handling a request
func NewContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) Ctx {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		"path", r.URL.Path,
		"method", r.Method,
	)
	if id := middleware.GetReqID(r.Context()); id != "" {
		logger = logger.With("request_id", id)
	}

	return &ctxImpl{
		req:        r,
		w:          w,
		params:     make(map[string]string),
		statusCode: http.StatusOK,
		logger:     logger,
	}
}

// WithParams returns a new context with route parameters set
func WithParams(ctx Ctx, params map[string]string) Ctx {
	if impl, ok := ctx.(*ctxImpl); ok {
		impl.mu.Lock()
		impl.params = params
		impl.mu.Unlock()
	}
	return ctx
}

// === Request Methods ===

func (c *ctxImpl) Request() *http.Request {
	return c.req
}

func (c *ctxImpl) Context() context.Context {
	return c.req.Context()
}

func (c *ctxImpl) Path() string {
	return c.req.URL.Path
}

func (c *ctxImpl) Method() string {
	return c.req.Method
}

func (c *ctxImpl) Query() url.Values {
	return c.req.URL.Query()
}

func (c *ctxImpl) Param(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := c.params[key]
	if !ok {
		panic("korden: route parameter '" + key + "' not found")
	}
	return val
}

func (c *ctxImpl) Form() (url.Values, error) {
	c.req.Body = http.MaxBytesReader(c.w, c.req.Body, MaxBodyBytes)
	if err := c.req.ParseForm(); err != nil {
		return nil, &HTTPError{Code: http.StatusBadRequest, Message: "malformed form", Err: err}
	}
	return c.req.PostForm, nil
}

// FormBinder is implemented by types that can fill themselves from form values
type FormBinder interface {
	BindForm(values url.Values) error
}

func (c *ctxImpl) Bind(v any) error {
	ct, _, _ := mime.ParseMediaType(c.req.Header.Get("Content-Type"))

	switch ct {
	case "application/json", "":
		dec := json.NewDecoder(http.MaxBytesReader(c.w, c.req.Body, MaxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return &HTTPError{Code: http.StatusBadRequest, Message: "empty body"}
			}
			return &HTTPError{Code: http.StatusBadRequest, Message: "malformed JSON", Err: err}
		}
		return nil

	case "application/x-www-form-urlencoded", "multipart/form-data":
		binder, ok := v.(FormBinder)
		if !ok {
			return &HTTPError{Code: http.StatusUnsupportedMediaType, Message: "form bodies not accepted here"}
		}
		values, err := c.Form()
		if err != nil {
			return err
		}
		return binder.BindForm(values)

	default:
		return &HTTPError{Code: http.StatusUnsupportedMediaType, Message: fmt.Sprintf("unsupported content type %q", ct)}
	}
}

// === Response Methods ===

func (c *ctxImpl) Status(code int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.headerWritten {
		c.logger.Warn("attempted to set status after headers written", "code", code)
		return
	}
	c.statusCode = code
}

func (c *ctxImpl) StatusCode() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statusCode
}

func (c *ctxImpl) Header() http.Header {
	return c.w.Header()
}

func (c *ctxImpl) SetHeader(key, val string) {
	c.w.Header().Set(key, val)
}

func (c *ctxImpl) Redirect(url string, code int) {
	c.mu.Lock()
	c.headerWritten = true
	c.statusCode = code
	c.mu.Unlock()

	http.Redirect(c.w, c.req, url, code)
}

func (c *ctxImpl) JSON(code int, v any) error {
	c.mu.Lock()
	c.statusCode = code
	c.headerWritten = true
	c.mu.Unlock()

	c.w.Header().Set("Content-Type", "application/json")
	c.w.WriteHeader(code)

	encoder := json.NewEncoder(c.w)
	return encoder.Encode(v)
}

func (c *ctxImpl) Text(code int, msg string) error {
	c.mu.Lock()
	c.statusCode = code
	c.headerWritten = true
	c.mu.Unlock()

	c.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.w.WriteHeader(code)

	_, err := c.w.Write([]byte(msg))
	return err
}

func (c *ctxImpl) Written() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headerWritten
}

// writeBody sends a rendered page
func (c *ctxImpl) writeBody(contentType string, body []byte) {
	c.mu.Lock()
	c.headerWritten = true
	code := c.statusCode
	c.mu.Unlock()

	c.w.Header().Set("Content-Type", contentType)
	c.w.WriteHeader(code)
	c.w.Write(body)
}

// === Page Methods ===

func (c *ctxImpl) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

func (c *ctxImpl) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

func (c *ctxImpl) NoCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noCache = true
}

func (c *ctxImpl) Done() <-chan struct{} {
	return c.req.Context().Done()
}

func (c *ctxImpl) Logger() *slog.Logger {
	return c.logger
}

// HTTPError is an error carrying the status code to respond with
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError with the given status code
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// StatusOf returns the status an error should be reported with
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
