package components

import (
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var cardStyle = styling.Define(`
.card {
	position: relative;
	display: flex;
	flex-direction: column;
	overflow: hidden;
	border-radius: 1rem;
	background: rgba(15, 15, 25, 0.6);
	border: 1px solid rgba(255, 255, 255, 0.08);
	backdrop-filter: blur(12px);
	transition: transform 0.3s ease, border-color 0.3s ease, box-shadow 0.3s ease;
}
.hover:hover {
	transform: translateY(-4px);
	border-color: rgba(245, 158, 11, 0.4);
	box-shadow: 0 10px 40px rgba(147, 51, 234, 0.2);
}
.amber:hover { border-color: rgba(245, 158, 11, 0.5); }
.purple:hover { border-color: rgba(168, 85, 247, 0.5); }
.body { display: flex; flex-direction: column; gap: 0.75rem; padding: 1.5rem; flex: 1; }
.title { font-size: 1.25rem; font-weight: 700; color: #fff; margin: 0; }
.pill {
	display: inline-flex;
	align-items: center;
	white-space: nowrap;
	padding: 0.5rem 1rem;
	border-radius: 9999px;
	font-size: 0.875rem;
	font-weight: 500;
	border: 1px solid rgba(255, 255, 255, 0.1);
	background: rgba(255, 255, 255, 0.05);
	color: #cbd5e1;
	cursor: pointer;
	text-decoration: none;
	transition: all 0.2s ease;
}
.pill:hover { border-color: rgba(245, 158, 11, 0.5); color: #F59E0B; }
.pill[aria-pressed="true"] {
	background: #9333EA;
	border-color: #9333EA;
	color: #fff;
	font-weight: 700;
	box-shadow: 0 0 15px rgba(147, 51, 234, 0.4);
}
.tag {
	display: inline-block;
	padding: 0.15rem 0.5rem;
	border-radius: 0.25rem;
	font-size: 0.7rem;
	font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
	letter-spacing: 0.05em;
	color: #94a3b8;
	background: rgba(255, 255, 255, 0.05);
	border: 1px solid rgba(255, 255, 255, 0.08);
}
`)

// Glow picks the hover accent of a card
type Glow string

const (
	GlowNone   Glow = ""
	GlowAmber  Glow = "amber"
	GlowPurple Glow = "purple"
)

// CardProps defines the properties for the Card component
type CardProps struct {
	Title string
	Glow  Glow
	Hover bool
	Class string
	Attrs vdom.Props
}

// Card wraps content in the glass panel used across the site
func Card(props CardProps, children ...*vdom.VNode) *vdom.VNode {
	return CardMedia(props, nil, children...)
}

// CardMedia is a card with media (a product image) above the padded body
func CardMedia(props CardProps, media *vdom.VNode, children ...*vdom.VNode) *vdom.VNode {
	attrs := vdom.Props{
		"class": el.Class(
			cardStyle.Classes("card", el.ClassIf(props.Hover, "hover"), string(props.Glow)),
			props.Class,
		),
	}
	for k, v := range props.Attrs {
		attrs[k] = v
	}

	body := make([]*vdom.VNode, 0, len(children)+1)
	if props.Title != "" {
		body = append(body, el.H3(el.Props{"class": cardStyle.Class("title")}, el.Text(props.Title)))
	}
	body = append(body, children...)

	return el.Div(attrs, media, el.Div(el.Props{"class": cardStyle.Class("body")}, body...))
}

// Pill renders a filter chip. Href makes it a link so filters work without
// scripts; extra attributes carry the live event hooks.
func Pill(label, href string, active bool, attrs vdom.Props) *vdom.VNode {
	props := vdom.Props{
		"class":        cardStyle.Class("pill"),
		"aria-pressed": boolString(active),
	}
	for k, v := range attrs {
		props[k] = v
	}
	if href != "" {
		props["href"] = href
		return el.A(props, el.Text(label))
	}
	props["type"] = "button"
	return el.Button(props, el.Text(label))
}

// Tag renders a small monospace label
func Tag(label string) *vdom.VNode {
	return el.Span(el.Props{"class": cardStyle.Class("tag")}, el.Text(label))
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
