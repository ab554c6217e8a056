package server

import (
	"slices"
	"strings"
	"sync"

	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// Layout wraps a page body, typically in the document shell
type Layout func(ctx Ctx, child *vdom.VNode) *vdom.VNode

type layoutEntry struct {
	prefix string
	layout Layout
}

// Layouts picks a layout by path prefix. The longest registered prefix
// that matches on a segment boundary wins; "/" matches every path.
type Layouts struct {
	mu      sync.RWMutex
	entries []layoutEntry // longest prefix first
}

// Use registers layout for every path under prefix, replacing any layout
// already registered there.
func (l *Layouts) Use(prefix string, layout Layout) {
	if prefix != "/" {
		prefix = strings.TrimSuffix(prefix, "/")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = slices.DeleteFunc(l.entries, func(e layoutEntry) bool { return e.prefix == prefix })
	l.entries = append(l.entries, layoutEntry{prefix, layout})
	slices.SortStableFunc(l.entries, func(a, b layoutEntry) int {
		return len(b.prefix) - len(a.prefix)
	})
}

// For returns the layout for path, or nil when none matches
func (l *Layouts) For(path string) Layout {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if underPrefix(path, e.prefix) {
			return e.layout
		}
	}
	return nil
}

// Wrap applies the layout for ctx.Path() to page
func (l *Layouts) Wrap(ctx Ctx, page *vdom.VNode) *vdom.VNode {
	if layout := l.For(ctx.Path()); layout != nil {
		return layout(ctx, page)
	}
	return page
}

func underPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	rest, ok := strings.CutPrefix(path, prefix)
	return ok && (rest == "" || rest[0] == '/')
}
