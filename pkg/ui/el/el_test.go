package el

import (
	"testing"

	"github.com/korden-tech/korden/pkg/ui/vdom"
)

func TestShortcutsBuildElements(t *testing.T) {
	n := Div(Props{"class": "card"}, Text("a"), If(false, Span(nil)), Span(nil, Text("b")))
	if n.Tag != "div" || n.Kind != vdom.KindElement {
		t.Fatalf("unexpected node %+v", n)
	}
	if len(n.Kids) != 2 {
		t.Errorf("len(Kids) = %d, want 2 (nil children dropped)", len(n.Kids))
	}
	if got := n.TextContent(); got != "ab" {
		t.Errorf("TextContent() = %q, want %q", got, "ab")
	}
}

func TestMap(t *testing.T) {
	n := Map([]string{"x", "y", "z"}, func(i int, s string) *vdom.VNode {
		return Li(nil, Textf("%d%s", i, s))
	})
	if n.Kind != vdom.KindFragment || len(n.Kids) != 3 {
		t.Fatalf("Map produced %+v", n)
	}
	if got := n.TextContent(); got != "0x1y2z" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"a", "", "b"}, "a b"},
		{[]string{"", " "}, ""},
		{[]string{"nav-link", ClassIf(true, "active"), ClassIf(false, "x")}, "nav-link active"},
	}
	for _, tt := range tests {
		if got := Class(tt.in...); got != tt.want {
			t.Errorf("Class(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
