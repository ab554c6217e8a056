package components

import (
	"strings"
	"testing"

	"github.com/korden-tech/korden/pkg/renderer/html"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

func render(t *testing.T, n *vdom.VNode) string {
	t.Helper()
	out, err := html.RenderToString(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func byTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}

func TestButton(t *testing.T) {
	tests := []struct {
		name     string
		props    ButtonProps
		tag      string
		contains []string
		absent   []string
	}{
		{
			name:     "link button",
			props:    ButtonProps{Text: "Explore Products", Href: "/products", Icon: "arrow-right"},
			tag:      "a",
			contains: []string{`href="/products"`, "Explore Products", "<svg", buttonStyle.Class("primary")},
			absent:   []string{"type="},
		},
		{
			name:     "submit button",
			props:    ButtonProps{Text: "Send", Type: "submit", Variant: ButtonSecondary},
			tag:      "button",
			contains: []string{`type="submit"`, buttonStyle.Class("secondary")},
			absent:   []string{"disabled"},
		},
		{
			name:     "loading disables",
			props:    ButtonProps{Text: "TRANSMITTING...", Loading: true, Icon: "arrow-right"},
			tag:      "button",
			contains: []string{"disabled", `aria-busy="true"`, spinnerStyle.Class("spinner")},
		},
		{
			name:     "extra attributes",
			props:    ButtonProps{Text: "Clear filters", Attrs: vdom.Props{"data-live-event": "filter-reset"}},
			tag:      "button",
			contains: []string{`data-live-event="filter-reset"`, `type="button"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Button(tt.props)
			if node.Tag != tt.tag {
				t.Errorf("tag = %s, want %s", node.Tag, tt.tag)
			}
			out := render(t, node)
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("missing %q in %s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("unexpected %q in %s", s, out)
				}
			}
		})
	}
}

func TestIcon(t *testing.T) {
	if Icon("no-such-icon", 16, "") != nil {
		t.Error("unknown icon should render nothing")
	}
	out := render(t, Icon("globe", 20, `a"b`))
	if !strings.Contains(out, `width="20"`) || !strings.Contains(out, `class="a&#34;b"`) {
		t.Errorf("icon = %s", out)
	}
	names := IconNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, n := range []string{"globe", "layers", "factory", "search", "cpu", "shield-check", "zap"} {
		if !HasIcon(n) {
			t.Errorf("icon %q missing", n)
		}
	}
}

func TestCard(t *testing.T) {
	media := vdom.NewElement("img", vdom.Props{"src": "x.png"})
	node := CardMedia(CardProps{Title: "K-Tech Sensors Series 105", Hover: true, Glow: GlowAmber}, media,
		vdom.NewText("body"))

	if len(node.Kids) != 2 || node.Kids[0].Tag != "img" {
		t.Fatalf("media should come first, kids = %d", len(node.Kids))
	}
	class := node.Attr("class")
	for _, c := range []string{"card", "hover", "amber"} {
		if !strings.Contains(class, cardStyle.Class(c)) {
			t.Errorf("class %q missing from %q", c, class)
		}
	}
	if h3 := node.Find(byTag("h3")); h3 == nil || h3.TextContent() != "K-Tech Sensors Series 105" {
		t.Error("title missing")
	}

	plain := Card(CardProps{})
	if len(plain.Kids) != 1 {
		t.Errorf("card without media has %d kids", len(plain.Kids))
	}
}

func TestPill(t *testing.T) {
	link := Pill("Sensors", "/products?category=Sensors", true, nil)
	if link.Tag != "a" || link.Attr("aria-pressed") != "true" {
		t.Errorf("link pill = %+v", link.Props)
	}
	btn := Pill("All", "", false, vdom.Props{"data-live-event": "filter-category"})
	if btn.Tag != "button" || btn.Attr("aria-pressed") != "false" || btn.Attr("data-live-event") != "filter-category" {
		t.Errorf("button pill = %+v", btn.Props)
	}
}

func TestAccordionItem(t *testing.T) {
	active := AccordionItem(AccordionItemProps{ID: 2, Title: "Quality Assured", Subtitle: "Zero Compromise", Body: "desc", Icon: "shield-check", Active: true})
	if active.Attr("data-active") != "true" {
		t.Error("active item not marked")
	}
	if a := active.Find(byTag("a")); a == nil || a.Attr("href") != "#item-2" {
		t.Error("fallback link missing")
	}
	if !strings.Contains(active.TextContent(), "02") || !strings.Contains(active.TextContent(), "Core Feature") {
		t.Errorf("text = %q", active.TextContent())
	}

	idle := AccordionItem(AccordionItemProps{ID: 1, Href: "/?feature=1"})
	if idle.Attr("data-active") != "false" {
		t.Error("idle item marked active")
	}
	if idle.Find(func(n *vdom.VNode) bool { return n.Attr("class") == accordionStyle.Class("graphic") }) != nil {
		t.Error("graphic panel rendered without a graphic")
	}

	group := Accordion("features", active, idle)
	if len(group.Kids) != 2 || group.Attr("id") != "features" {
		t.Errorf("group = %+v", group.Props)
	}
}

func TestField(t *testing.T) {
	input := render(t, Field(FieldProps{Name: "email", Label: "EMAIL_ADDRESS", Type: "email", Value: "a@b.co", Required: true}))
	for _, s := range []string{`type="email"`, `value="a@b.co"`, "required", `for="email"`, "EMAIL_ADDRESS"} {
		if !strings.Contains(input, s) {
			t.Errorf("missing %q in %s", s, input)
		}
	}

	area := Field(FieldProps{Name: "message", Type: "textarea", Value: "<hi>", Error: "required"})
	out := render(t, area)
	if !strings.Contains(out, "<textarea") || !strings.Contains(out, "&lt;hi&gt;") {
		t.Errorf("textarea = %s", out)
	}
	if !strings.Contains(out, `aria-invalid="true"`) || !strings.Contains(out, formStyle.Class("invalid")) {
		t.Errorf("error state missing: %s", out)
	}
}

func TestSectionTitle(t *testing.T) {
	node := SectionTitle("Our Catalog", "Products", true)
	if h2 := node.Find(byTag("h2")); h2 == nil || h2.TextContent() != "Our Catalog" {
		t.Error("title missing")
	}
	if !strings.Contains(node.Attr("class"), titleStyle.Class("center")) {
		t.Error("center class missing")
	}
	if SectionTitle("x", "", false).Find(byTag("span")) != nil {
		t.Error("empty subtitle rendered")
	}
}

func TestStylesRegistered(t *testing.T) {
	css := styling.GetAllCSS()
	for _, s := range []*styling.ComponentStyle{buttonStyle, cardStyle, titleStyle, accordionStyle, formStyle, spinnerStyle} {
		if !strings.Contains(css, "."+s.Class(firstClass(s))) {
			t.Errorf("sheet %s not registered", s.Hash)
		}
	}
}

func firstClass(s *styling.ComponentStyle) string {
	for _, c := range []string{"btn", "card", "wrap", "group", "field", "spinner"} {
		if s.Has(c) {
			return c
		}
	}
	return ""
}
