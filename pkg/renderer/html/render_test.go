package html

import (
	"strings"
	"testing"

	"github.com/korden-tech/korden/pkg/ui/vdom"
)

func TestRender_TextNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "simple text",
			node:     vdom.NewText("Powering the"),
			expected: "Powering the",
		},
		{
			name:     "text with HTML entities",
			node:     vdom.NewText("<script>alert('xss')</script>"),
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "text with quotes",
			node:     vdom.NewText(`"Korden" & 'Co'`),
			expected: "&#34;Korden&#34; &amp; &#39;Co&#39;",
		},
		{
			name:     "raw markup",
			node:     vdom.NewRaw("<p><em>story</em></p>"),
			expected: "<p><em>story</em></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRender_Elements(t *testing.T) {
	tests := []struct {
		name     string
		node     *vdom.VNode
		expected string
	}{
		{
			name:     "empty div",
			node:     vdom.NewElement("div", nil),
			expected: "<div></div>",
		},
		{
			name:     "div with text",
			node:     vdom.NewElement("div", nil, vdom.NewText("Hello")),
			expected: "<div>Hello</div>",
		},
		{
			name: "attributes are sorted",
			node: vdom.NewElement("div", vdom.Props{
				"id":    "main",
				"class": "container",
			}),
			expected: `<div class="container" id="main"></div>`,
		},
		{
			name: "nested elements",
			node: vdom.NewElement("div", nil,
				vdom.NewElement("p", nil, vdom.NewText("Paragraph 1")),
				vdom.NewElement("p", nil, vdom.NewText("Paragraph 2")),
			),
			expected: "<div><p>Paragraph 1</p><p>Paragraph 2</p></div>",
		},
		{
			name: "void element",
			node: vdom.NewElement("img", vdom.Props{
				"src": "https://picsum.photos/400/300?random=1",
				"alt": "K-Tech",
			}),
			expected: `<img alt="K-Tech" src="https://picsum.photos/400/300?random=1">`,
		},
		{
			name: "boolean attributes",
			node: vdom.NewElement("input", vdom.Props{
				"type":     "email",
				"required": true,
				"disabled": false,
			}),
			expected: `<input required type="email">`,
		},
		{
			name:     "nil attribute skipped",
			node:     vdom.NewElement("a", vdom.Props{"href": "/", "class": nil, "key": "k"}),
			expected: `<a href="/"></a>`,
		},
		{
			name:     "script content not escaped",
			node:     vdom.NewElement("script", nil, vdom.NewText("if (a < b) {}")),
			expected: `<script>if (a < b) {}</script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRender_LiveTargets(t *testing.T) {
	node := vdom.NewElement("div", nil,
		vdom.NewElement("div", vdom.Props{vdom.LiveProp: "grid"}),
		vdom.NewElement("form", vdom.Props{vdom.LiveProp: "contact"}),
		vdom.NewElement("p", nil),
	)
	result, err := RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`<div data-hid="h1" data-live="grid">`, `<form data-hid="h2" data-live="contact">`, `<p></p>`} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in %q", want, result)
		}
	}
}

func TestRender_LiveTargetsRestart(t *testing.T) {
	node := vdom.NewElement("section", vdom.Props{vdom.LiveProp: "products"})
	for i := 0; i < 3; i++ {
		got, err := RenderToString(node)
		if err != nil {
			t.Fatal(err)
		}
		if want := `<section data-hid="h1" data-live="products"></section>`; got != want {
			t.Errorf("render %d = %q, want %q", i, got, want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() *vdom.VNode {
		return vdom.NewElement("a", vdom.Props{"href": "/contact", "class": "btn", "id": "cta", "title": "Contact"})
	}
	first, _ := RenderToString(build())
	for i := 0; i < 20; i++ {
		next, _ := RenderToString(build())
		if next != first {
			t.Fatalf("render %d differs: %q vs %q", i, next, first)
		}
	}
}

func TestRender_XSSPrevention(t *testing.T) {
	tests := []struct {
		name    string
		node    *vdom.VNode
		notWant string
	}{
		{
			name:    "script in text",
			node:    vdom.NewElement("div", nil, vdom.NewText("<script>alert('xss')</script>")),
			notWant: "<script>",
		},
		{
			name:    "script in attribute",
			node:    vdom.NewElement("div", vdom.Props{"title": `<script>alert('xss')</script>`}),
			notWant: "<script>",
		},
		{
			name:    "javascript URL",
			node:    vdom.NewElement("a", vdom.Props{"href": " JavaScript:alert('xss')"}, vdom.NewText("Link")),
			notWant: "avaScript:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Contains(result, tt.notWant) {
				t.Errorf("Result should not contain %q, got: %q", tt.notWant, result)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	var b strings.Builder
	root := vdom.NewElement("html", vdom.Props{"lang": "en"},
		vdom.NewElement("head", nil,
			vdom.NewElement("meta", vdom.Props{"charset": "utf-8"}),
			vdom.NewElement("title", nil, vdom.NewText("Korden Technologies")),
		),
		vdom.NewElement("body", nil),
	)
	if err := RenderDocument(&b, root); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html lang=\"en\">") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `<meta charset="utf-8"><title>Korden Technologies</title>`) {
		t.Errorf("head not rendered: %q", got)
	}
}

func BenchmarkRenderToString(b *testing.B) {
	kids := make([]*vdom.VNode, 0, 30)
	for i := 0; i < 30; i++ {
		kids = append(kids, vdom.NewElement("div", vdom.Props{"class": "product-card"},
			vdom.NewElement("h3", nil, vdom.NewText("K-Tech Sensors Series 102")),
			vdom.NewElement("p", nil, vdom.NewText("High-performance sensors solution")),
		))
	}
	root := vdom.NewElement("div", vdom.Props{"class": "grid"}, kids...)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderToString(root); err != nil {
			b.Fatal(err)
		}
	}
}
