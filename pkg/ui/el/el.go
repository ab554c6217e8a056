// Package el provides element shortcuts for building vdom trees.
package el

import (
	"fmt"
	"strings"

	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// Props is re-exported so pages only import el
type Props = vdom.Props

// Node is re-exported so pages only import el
type Node = *vdom.VNode

func tag(name string) func(props vdom.Props, children ...*vdom.VNode) *vdom.VNode {
	return func(props vdom.Props, children ...*vdom.VNode) *vdom.VNode {
		return vdom.NewElement(name, props, children...)
	}
}

// Element shortcuts for the HTML elements the site uses
var (
	Html     = tag("html")
	Head     = tag("head")
	Body     = tag("body")
	Title    = tag("title")
	Meta     = tag("meta")
	Link     = tag("link")
	Script   = tag("script")
	Style    = tag("style")
	Main     = tag("main")
	Header   = tag("header")
	Footer   = tag("footer")
	Nav      = tag("nav")
	Section  = tag("section")
	Article  = tag("article")
	Aside    = tag("aside")
	Div      = tag("div")
	Span     = tag("span")
	P        = tag("p")
	H1       = tag("h1")
	H2       = tag("h2")
	H3       = tag("h3")
	H4       = tag("h4")
	A        = tag("a")
	Img      = tag("img")
	Canvas   = tag("canvas")
	Button   = tag("button")
	Form     = tag("form")
	Label    = tag("label")
	Input    = tag("input")
	Textarea = tag("textarea")
	Ul       = tag("ul")
	Li       = tag("li")
	Strong   = tag("strong")
	Em       = tag("em")
	Br       = tag("br")
)

// Text creates a text node
func Text(s string) *vdom.VNode {
	return vdom.NewText(s)
}

// Textf creates a formatted text node
func Textf(format string, args ...any) *vdom.VNode {
	return vdom.NewText(fmt.Sprintf(format, args...))
}

// Raw inserts trusted markup
func Raw(markup string) *vdom.VNode {
	return vdom.NewRaw(markup)
}

// Fragment groups children without a wrapper
func Fragment(children ...*vdom.VNode) *vdom.VNode {
	return vdom.NewFragment(children...)
}

// If returns node when cond holds, nil otherwise. Nil children are dropped.
func If(cond bool, node *vdom.VNode) *vdom.VNode {
	if cond {
		return node
	}
	return nil
}

// Map renders every item of a slice into a fragment
func Map[T any](items []T, render func(int, T) *vdom.VNode) *vdom.VNode {
	kids := make([]*vdom.VNode, 0, len(items))
	for i, item := range items {
		kids = append(kids, render(i, item))
	}
	return vdom.NewFragment(kids...)
}

// Class joins the non-empty class names
func Class(names ...string) string {
	parts := names[:0:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// ClassIf returns name when cond holds
func ClassIf(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
