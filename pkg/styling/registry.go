package styling

import (
	"sort"
	"strings"
	"sync"
)

// StyleRegistry collects all component styles for injection
type StyleRegistry struct {
	mu     sync.RWMutex
	styles map[string]*ComponentStyle
}

// NewRegistry returns an empty registry
func NewRegistry() *StyleRegistry {
	return &StyleRegistry{styles: make(map[string]*ComponentStyle)}
}

var globalRegistry = NewRegistry()

// Add registers a style. Identical sheets share a hash and are kept once.
func (r *StyleRegistry) Add(style *ComponentStyle) {
	if style == nil || style.CSS == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[style.Hash] = style
}

// CSS returns every registered sheet ordered by hash, so the output is
// stable across runs and safe to cache.
func (r *StyleRegistry) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hashes := make([]string, 0, len(r.styles))
	for h := range r.styles {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	var b strings.Builder
	for _, h := range hashes {
		b.WriteString(strings.TrimSpace(r.styles[h].CSS))
		b.WriteString("\n")
	}
	return b.String()
}

// Len returns the number of registered sheets
func (r *StyleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

// Register adds a component style to the global registry
func Register(style *ComponentStyle) {
	globalRegistry.Add(style)
}

// GetAllCSS returns all registered CSS as a single string
func GetAllCSS() string {
	return globalRegistry.CSS()
}

// Reset clears all registered styles (useful for testing)
func Reset() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.styles = make(map[string]*ComponentStyle)
}

// Define scopes css and registers it globally. Packages call it from
// package-level vars so their sheets are present before the first render.
func Define(css string) *ComponentStyle {
	style := Style(css)
	Register(style)
	return style
}
