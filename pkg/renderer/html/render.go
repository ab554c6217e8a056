// Package html renders vdom trees to HTML on the server.
package html

import (
	"fmt"
	"html"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Attributes written as a bare name when true and dropped when false
var boolAttrs = map[string]bool{
	"async": true, "autofocus": true, "checked": true, "defer": true,
	"disabled": true, "hidden": true, "multiple": true, "readonly": true,
	"required": true, "selected": true,
}

// textMode says how text children are written
type textMode uint8

const (
	escaped textMode = iota
	verbatim         // inside <script> and <style>
)

// renderer walks one tree. Live targets are numbered h1, h2, ... in
// document order, so the numbering restarts for every Render call.
type renderer struct {
	w    io.Writer
	err  error
	live int
}

func (r *renderer) write(s string) {
	if r.err == nil {
		_, r.err = io.WriteString(r.w, s)
	}
}

func (r *renderer) node(n *vdom.VNode, mode textMode) {
	if n == nil || r.err != nil {
		return
	}
	switch n.Kind {
	case vdom.KindText:
		if mode == verbatim {
			r.write(n.Text)
		} else {
			r.write(html.EscapeString(n.Text))
		}
	case vdom.KindRaw:
		r.write(n.Text)
	case vdom.KindFragment:
		for i := range n.Kids {
			r.node(&n.Kids[i], mode)
		}
	case vdom.KindElement:
		r.element(n)
	}
}

func (r *renderer) element(n *vdom.VNode) {
	r.write("<" + n.Tag)
	if n.HasFlag(vdom.FlagLive) {
		r.live++
		r.write(` data-hid="h` + strconv.Itoa(r.live) + `"`)
	}
	r.attrs(n.Props)
	r.write(">")
	if voidTags[n.Tag] {
		return
	}

	mode := escaped
	if n.Tag == "script" || n.Tag == "style" {
		mode = verbatim
	}
	for i := range n.Kids {
		r.node(&n.Kids[i], mode)
	}
	r.write("</" + n.Tag + ">")
}

// attrs writes props in key order so equal trees give equal bytes
func (r *renderer) attrs(props vdom.Props) {
	keys := make([]string, 0, len(props))
	for k, v := range props {
		if k == "key" || k == "ref" || v == nil {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v := props[k]
		if boolAttrs[k] {
			if on, _ := v.(bool); on {
				r.write(" " + k)
			}
			continue
		}
		s := fmt.Sprint(v)
		if (k == "href" || k == "src") && unsafeURL(s) {
			s = "#"
		}
		r.write(" " + k + `="` + html.EscapeString(s) + `"`)
	}
}

func unsafeURL(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "javascript:")
}

// Render writes node to w
func Render(w io.Writer, node *vdom.VNode) error {
	r := &renderer{w: w}
	r.node(node, escaped)
	return r.err
}

// RenderToString renders node into a string
func RenderToString(node *vdom.VNode) (string, error) {
	var b strings.Builder
	if err := Render(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderDocument writes a full HTML document with a doctype preamble
func RenderDocument(w io.Writer, root *vdom.VNode) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return Render(w, root)
}
