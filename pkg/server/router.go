package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/korden-tech/korden/internal/cache"
	"github.com/korden-tech/korden/pkg/renderer/html"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// HandlerFunc is the signature for route handlers
type HandlerFunc func(ctx Ctx) (*vdom.VNode, error)

// APIHandlerFunc is the signature for API route handlers
type APIHandlerFunc func(ctx Ctx) (any, error)

// Middleware interface for before/after hooks
type Middleware interface {
	Before(ctx Ctx) error // return Stop() to abort chain
	After(ctx Ctx) error  // always called if Before succeeded
}

// RouteNode represents a node in the radix tree
type RouteNode struct {
	segment    string
	param      bool
	catchAll   bool
	paramName  string
	paramType  string // "string", "int", "int64", "uuid"
	handler    HandlerFunc
	apiHandler APIHandlerFunc
	children   []*RouteNode
	middleware []Middleware

	name      string
	methods   []string
	cacheable bool
	cacheTags []string
}

// Named sets the name shown in the route table
func (n *RouteNode) Named(name string) *RouteNode {
	n.name = name
	return n
}

// Methods replaces the accepted HTTP methods
func (n *RouteNode) Methods(methods ...string) *RouteNode {
	n.methods = methods
	return n
}

// Cache stores successful GET responses of this route in the page cache.
// tags name what the page is rendered from, for invalidation.
func (n *RouteNode) Cache(tags ...string) *RouteNode {
	n.cacheable = true
	n.cacheTags = tags
	return n
}

func (n *RouteNode) allows(method string) bool {
	if method == http.MethodHead {
		method = http.MethodGet
	}
	return slices.Contains(n.methods, method)
}

// Router manages all routes and middleware
type Router struct {
	root       *RouteNode
	notFound   HandlerFunc
	errorPage  HandlerFunc
	middleware []Middleware
	layouts    *Layouts
	cache      *cache.Cache
	logger     *slog.Logger
	mu         sync.RWMutex
}

// NewRouter creates a new router instance
func NewRouter() *Router {
	return &Router{
		root: &RouteNode{
			children: make([]*RouteNode, 0),
		},
		middleware: make([]Middleware, 0),
		layouts:    &Layouts{},
		logger:     slog.Default(),
	}
}

// SetLogger sets the base logger handed to every request context
func (r *Router) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Layouts returns the layout registry pages are wrapped with
func (r *Router) Layouts() *Layouts {
	return r.layouts
}

// SetCache enables the page cache for routes marked with Cache
func (r *Router) SetCache(c *cache.Cache) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = c
}

// AddRoute registers a page handler for a path
func (r *Router) AddRoute(path string, handler HandlerFunc, middleware ...Middleware) *RouteNode {
	r.mu.Lock()
	defer r.mu.Unlock()

	node := r.insert(path)
	node.handler = handler
	node.apiHandler = nil
	node.middleware = middleware
	node.methods = []string{http.MethodGet}
	return node
}

// AddAPIRoute registers an API handler for a path
func (r *Router) AddAPIRoute(path string, handler APIHandlerFunc, middleware ...Middleware) *RouteNode {
	r.mu.Lock()
	defer r.mu.Unlock()

	node := r.insert(path)
	node.apiHandler = handler
	node.handler = nil
	node.middleware = middleware
	node.methods = []string{http.MethodGet}
	return node
}

func (r *Router) insert(path string) *RouteNode {
	node := r.root
	for _, segment := range splitPath(path) {
		node = r.findOrCreateChild(node, segment)
	}
	return node
}

// Use adds global middleware
func (r *Router) Use(middleware ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middleware = append(r.middleware, middleware...)
}

// SetNotFound sets the 404 handler
func (r *Router) SetNotFound(handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = handler
}

// SetErrorPage sets the 500 error handler
func (r *Router) SetErrorPage(handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorPage = handler
}

// Match finds the route for the given path. The returned node is nil when
// nothing matches.
func (r *Router) Match(path string) (*RouteNode, map[string]string, []Middleware) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	params := make(map[string]string)
	node, matched := r.matchNode(r.root, splitPath(path), params)
	if !matched || (node.handler == nil && node.apiHandler == nil) {
		return nil, map[string]string{}, r.middleware
	}

	// Collect middleware from root to matched node
	allMiddleware := append([]Middleware{}, r.middleware...)
	allMiddleware = append(allMiddleware, node.middleware...)
	return node, params, allMiddleware
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	logger, pages := r.logger, r.cache
	r.mu.RUnlock()

	ctx := NewContext(w, req, logger)

	defer func() {
		if err := recover(); err != nil {
			ctx.Logger().Error("panic in handler", "error", err)
			r.handleError(ctx, fmt.Errorf("internal server error: %v", err))
		}
	}()

	node, params, middleware := r.Match(req.URL.Path)
	if node == nil {
		r.renderNotFound(ctx)
		return
	}
	if !node.allows(req.Method) {
		ctx.SetHeader("Allow", strings.Join(node.methods, ", "))
		r.handleError(ctx, NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
		return
	}
	ctx = WithParams(ctx, params)

	useCache := pages != nil && node.cacheable && req.Method == http.MethodGet
	key := cache.PageKey(req.URL.Path, req.URL.Query())
	if useCache {
		if entry, ok := pages.Get(key); ok {
			ctx.SetHeader("X-Cache", "HIT")
			r.writeEntry(ctx, req, entry)
			return
		}
	}

	handler := node.handler
	if node.apiHandler != nil {
		handler = wrapAPIHandler(node.apiHandler)
	}

	// Build middleware chain
	finalHandler := handler
	for i := len(middleware) - 1; i >= 0; i-- {
		mw := middleware[i]
		next := finalHandler
		finalHandler = func(c Ctx) (*vdom.VNode, error) {
			if err := mw.Before(c); err != nil {
				if err == ErrStop {
					return nil, nil // Middleware handled response
				}
				return nil, err
			}

			result, err := next(c)

			if afterErr := mw.After(c); afterErr != nil {
				c.Logger().Error("error in After middleware", "error", afterErr)
			}

			return result, err
		}
	}

	vnode, err := finalHandler(ctx)
	if err != nil {
		if node.apiHandler != nil {
			r.writeAPIError(ctx, err)
		} else {
			r.handleError(ctx, err)
		}
		return
	}

	// A nil page means the response was already written
	if vnode == nil {
		return
	}

	body, err := r.renderPage(ctx, vnode)
	if err != nil {
		r.handleError(ctx, err)
		return
	}

	impl := ctx.(*ctxImpl)
	const contentType = "text/html; charset=utf-8"
	if useCache && ctx.StatusCode() == http.StatusOK && !impl.noCache {
		entry := pages.Put(key, body, contentType, node.cacheTags...)
		ctx.SetHeader("X-Cache", "MISS")
		r.writeEntry(ctx, req, entry)
		return
	}
	impl.writeBody(contentType, body)
}

// renderPage wraps a page body in its layout and renders the document
func (r *Router) renderPage(ctx Ctx, page *vdom.VNode) ([]byte, error) {
	doc := r.layouts.Wrap(ctx, page)
	var buf bytes.Buffer
	var err error
	if doc.Tag == "html" {
		err = html.RenderDocument(&buf, doc)
	} else {
		err = html.Render(&buf, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Router) writeEntry(ctx Ctx, req *http.Request, entry *cache.Entry) {
	ctx.SetHeader("ETag", entry.ETag)
	ctx.SetHeader("Cache-Control", "no-cache")
	if match := req.Header.Get("If-None-Match"); match != "" && match == entry.ETag {
		ctx.Status(http.StatusNotModified)
		ctx.(*ctxImpl).writeBody(entry.ContentType, nil)
		return
	}
	ctx.SetHeader("Content-Length", strconv.Itoa(len(entry.Data)))
	ctx.(*ctxImpl).writeBody(entry.ContentType, entry.Data)
}

// findOrCreateChild finds or creates a child node
func (r *Router) findOrCreateChild(parent *RouteNode, segment string) *RouteNode {
	// Check if it's a parameter segment
	if strings.HasPrefix(segment, "[") && strings.HasSuffix(segment, "]") {
		paramDef := segment[1 : len(segment)-1]

		// Check for catch-all
		if strings.HasPrefix(paramDef, "...") {
			paramName := paramDef[3:]
			for _, child := range parent.children {
				if child.catchAll && child.paramName == paramName {
					return child
				}
			}
			node := &RouteNode{
				segment:   segment,
				catchAll:  true,
				paramName: paramName,
				paramType: "string",
				children:  make([]*RouteNode, 0),
			}
			parent.children = append(parent.children, node)
			return node
		}

		paramName, paramType := parseParamDef(paramDef)

		for _, child := range parent.children {
			if child.param && child.paramName == paramName {
				return child
			}
		}

		node := &RouteNode{
			segment:   segment,
			param:     true,
			paramName: paramName,
			paramType: paramType,
			children:  make([]*RouteNode, 0),
		}
		parent.children = append(parent.children, node)
		return node
	}

	// Static segment
	for _, child := range parent.children {
		if !child.param && !child.catchAll && child.segment == segment {
			return child
		}
	}

	node := &RouteNode{
		segment:  segment,
		children: make([]*RouteNode, 0),
	}
	parent.children = append(parent.children, node)
	return node
}

// matchNode attempts to match a path against the tree
func (r *Router) matchNode(node *RouteNode, segments []string, params map[string]string) (*RouteNode, bool) {
	if len(segments) == 0 {
		return node, true
	}

	segment := segments[0]
	remaining := segments[1:]

	// Try static match first (highest priority)
	for _, child := range node.children {
		if !child.param && !child.catchAll && child.segment == segment {
			if result, ok := r.matchNode(child, remaining, params); ok && (result.handler != nil || result.apiHandler != nil) {
				return result, true
			}
		}
	}

	for _, child := range node.children {
		if child.param && validateParam(segment, child.paramType) {
			params[child.paramName] = segment
			if result, ok := r.matchNode(child, remaining, params); ok {
				return result, true
			}
			delete(params, child.paramName)
		}
	}

	// Try catch-all match (lowest priority)
	for _, child := range node.children {
		if child.catchAll {
			params[child.paramName] = strings.Join(segments, "/")
			return child, true
		}
	}

	return nil, false
}

// renderNotFound renders the 404 page inside the layout
func (r *Router) renderNotFound(ctx Ctx) {
	ctx.Status(http.StatusNotFound)
	r.mu.RLock()
	notFound := r.notFound
	r.mu.RUnlock()

	if notFound != nil {
		if vnode, err := notFound(ctx); err == nil && vnode != nil {
			if body, err := r.renderPage(ctx, vnode); err == nil {
				ctx.(*ctxImpl).writeBody("text/html; charset=utf-8", body)
				return
			}
		}
	}
	ctx.Text(http.StatusNotFound, "Not Found")
}

// handleError renders the error page with the error's status code
func (r *Router) handleError(ctx Ctx, err error) {
	if ctx.Written() {
		ctx.Logger().Error("handler error after response started", "error", err)
		return
	}

	code := StatusOf(err)
	if code == http.StatusNotFound {
		r.renderNotFound(ctx)
		return
	}
	if code >= 500 {
		ctx.Logger().Error("handler error", "error", err, "status", code)
	} else {
		ctx.Logger().Debug("request rejected", "error", err, "status", code)
	}

	impl := ctx.(*ctxImpl)
	impl.err = err
	ctx.Status(code)

	r.mu.RLock()
	errorPage := r.errorPage
	r.mu.RUnlock()

	if errorPage != nil {
		if vnode, perr := errorPage(ctx); perr == nil && vnode != nil {
			if body, rerr := r.renderPage(ctx, vnode); rerr == nil {
				impl.writeBody("text/html; charset=utf-8", body)
				return
			}
		}
	}

	ctx.Text(code, http.StatusText(code))
}

// ErrorOf returns the error an error page is being rendered for
func ErrorOf(ctx Ctx) error {
	if impl, ok := ctx.(*ctxImpl); ok {
		return impl.err
	}
	return nil
}

// writeAPIError reports an API failure as JSON
func (r *Router) writeAPIError(ctx Ctx, err error) {
	if ctx.Written() {
		return
	}
	code := StatusOf(err)
	msg := http.StatusText(code)
	var he *HTTPError
	if errors.As(err, &he) && code < 500 {
		msg = he.Message
	}
	if code >= 500 {
		ctx.Logger().Error("api error", "error", err)
	}
	ctx.JSON(code, map[string]any{"error": msg, "status": code})
}

// Helper functions

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}
	return strings.Split(path, "/")
}

func parseParamDef(def string) (name, paramType string) {
	parts := strings.Split(def, ":")
	name = parts[0]
	paramType = "string"

	if len(parts) > 1 {
		paramType = parts[1]
	}

	return name, paramType
}

func validateParam(value, paramType string) bool {
	switch paramType {
	case "int":
		_, err := strconv.Atoi(value)
		return err == nil
	case "int64":
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	case "uuid":
		_, err := uuid.Parse(value)
		return err == nil && len(value) == 36
	default:
		return len(value) > 0
	}
}

func wrapAPIHandler(handler APIHandlerFunc) HandlerFunc {
	return func(ctx Ctx) (*vdom.VNode, error) {
		result, err := handler(ctx)
		if err != nil {
			return nil, err
		}
		if ctx.Written() {
			return nil, nil
		}

		code := ctx.StatusCode()
		if err := ctx.JSON(code, result); err != nil {
			return nil, err
		}

		// Return nil to indicate response was handled
		return nil, nil
	}
}

// RouteTable represents the serialized routing table
type RouteTable struct {
	Routes []RouteEntry `json:"routes" yaml:"routes"`
}

// RouteEntry represents a single route in the table
type RouteEntry struct {
	Path    string     `json:"path" yaml:"path"`
	Name    string     `json:"name" yaml:"name"`
	Kind    string     `json:"kind" yaml:"kind"`
	Methods []string   `json:"methods" yaml:"methods"`
	Cached  bool       `json:"cached,omitempty" yaml:"cached,omitempty"`
	Tags    []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Params  []ParamDef `json:"params,omitempty" yaml:"params,omitempty"`
}

// Static reports whether the route has no parameters
func (e RouteEntry) Static() bool {
	return len(e.Params) == 0 && !strings.Contains(e.Path, "[...")
}

// ParamDef represents a route parameter definition
type ParamDef struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ExportTable exports the routing table, sorted by path
func (r *Router) ExportTable() *RouteTable {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table := &RouteTable{
		Routes: make([]RouteEntry, 0),
	}
	r.collectRoutes(r.root, "", table)
	slices.SortFunc(table.Routes, func(a, b RouteEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return table
}

func (r *Router) collectRoutes(node *RouteNode, path string, table *RouteTable) {
	currentPath := path
	if node.segment != "" {
		currentPath = path + "/" + node.segment
	}

	if node.handler != nil || node.apiHandler != nil {
		p := currentPath
		if p == "" {
			p = "/"
		}
		entry := RouteEntry{
			Path:    p,
			Name:    node.name,
			Kind:    "page",
			Methods: node.methods,
			Cached:  node.cacheable,
			Tags:    node.cacheTags,
		}
		if node.apiHandler != nil {
			entry.Kind = "api"
		}
		if entry.Name == "" {
			entry.Name = p
		}

		for _, seg := range splitPath(p) {
			if strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]") {
				paramDef := seg[1 : len(seg)-1]
				if !strings.HasPrefix(paramDef, "...") {
					name, paramType := parseParamDef(paramDef)
					entry.Params = append(entry.Params, ParamDef{
						Name: name,
						Type: paramType,
					})
				}
			}
		}

		table.Routes = append(table.Routes, entry)
	}

	for _, child := range node.children {
		r.collectRoutes(child, currentPath, table)
	}
}
