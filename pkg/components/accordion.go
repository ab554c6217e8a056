package components

import (
	"fmt"

	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var accordionStyle = styling.Define(`
.group {
	display: flex;
	flex-direction: column;
	gap: 1rem;
}
@media (min-width: 768px) {
	.group { flex-direction: row; height: 560px; }
}
.item {
	position: relative;
	display: flex;
	flex-direction: column;
	flex: 0.8;
	min-height: 6rem;
	overflow: hidden;
	border-radius: 1.5rem;
	border: 1px solid rgba(255, 255, 255, 0.05);
	background: #050505;
	cursor: pointer;
	transition: flex 0.7s cubic-bezier(0.25, 1, 0.5, 1), border-color 0.5s ease, background 0.5s ease;
}
.item:hover { border-color: rgba(255, 255, 255, 0.1); background: #0a0a0a; }
.item[data-active="true"] {
	flex: 3;
	background: #080808;
	border-color: rgba(245, 158, 11, 0.5);
	box-shadow: 0 0 30px -10px rgba(245, 158, 11, 0.15);
}
.header {
	display: flex;
	align-items: flex-start;
	justify-content: space-between;
	gap: 1rem;
	padding: 1.5rem 2rem;
	color: inherit;
	text-decoration: none;
}
.number {
	font-size: clamp(1.8rem, 4vw, 3.75rem);
	font-weight: 800;
	color: transparent;
	-webkit-text-stroke: 1px rgba(100, 116, 139, 0.5);
	transition: all 0.5s ease;
}
.item[data-active="true"] .number {
	background: linear-gradient(180deg, #fbbf24, #d97706);
	-webkit-background-clip: text;
	background-clip: text;
	-webkit-text-stroke: 0;
}
.heading { flex: 1; }
.title {
	margin: 0;
	font-size: clamp(1.1rem, 2.2vw, 1.9rem);
	font-weight: 700;
	text-transform: uppercase;
	letter-spacing: 0.04em;
	color: #64748b;
	transition: color 0.5s ease, transform 0.5s ease;
}
.item[data-active="true"] .title { color: #fff; transform: translateX(0.5rem); }
.subtitle {
	max-height: 0;
	opacity: 0;
	overflow: hidden;
	font-size: 0.75rem;
	letter-spacing: 0.25em;
	text-transform: uppercase;
	color: #F59E0B;
	transition: all 0.5s ease-out;
}
.item[data-active="true"] .subtitle { max-height: 2rem; opacity: 1; margin-top: 0.5rem; }
.toggle {
	display: flex;
	align-items: center;
	justify-content: center;
	flex-shrink: 0;
	width: 2.75rem;
	height: 2.75rem;
	border-radius: 9999px;
	border: 1px solid rgba(255, 255, 255, 0.1);
	color: #475569;
	transition: all 0.5s ease;
}
.item[data-active="true"] .toggle {
	border-color: #F59E0B;
	background: #F59E0B;
	color: #000;
	transform: rotate(180deg);
	box-shadow: 0 0 20px rgba(245, 158, 11, 0.4);
}
.plus, .minus { display: inline-flex; }
.minus, .item[data-active="true"] .plus { display: none; }
.item[data-active="true"] .minus { display: inline-flex; }
.content {
	display: none;
	flex: 1;
	gap: 2rem;
	padding: 0 2rem 2rem;
}
.item[data-active="true"] .content { display: flex; flex-wrap: wrap; animation: rise 0.7s ease both; }
.copy { flex: 1 1 18rem; display: flex; flex-direction: column; gap: 1.25rem; }
.label {
	display: inline-flex;
	align-items: center;
	gap: 0.5rem;
	font-size: 0.7rem;
	letter-spacing: 0.2em;
	text-transform: uppercase;
	color: #a855f7;
}
.desc { margin: 0; color: #94a3b8; line-height: 1.7; max-width: 32rem; }
.graphic {
	position: relative;
	flex: 1 1 16rem;
	min-height: 14rem;
	border-radius: 1rem;
	overflow: hidden;
	border: 1px solid rgba(255, 255, 255, 0.05);
	background: radial-gradient(circle at center, rgba(126, 34, 206, 0.15), transparent 70%);
}
@keyframes rise { from { opacity: 0; transform: translateY(2rem); } to { opacity: 1; transform: none; } }
`)

// AccordionItemProps defines one panel of a hover accordion
type AccordionItemProps struct {
	ID       int
	Title    string
	Subtitle string
	Body     string
	Icon     string
	Active   bool
	Href     string      // fallback link that opens this panel without scripts
	Graphic  *vdom.VNode // decoration shown beside the body
	Action   *vdom.VNode // call to action under the body
}

// Accordion groups items. The client opens an item on hover or click and
// closes all of them when the pointer leaves the group.
func Accordion(id string, items ...*vdom.VNode) *vdom.VNode {
	return el.Div(el.Props{
		"class":          accordionStyle.Class("group"),
		"id":             id,
		"data-accordion": "",
	}, items...)
}

// AccordionItem renders one panel. Open state lives in data-active so the
// client can toggle it without re-rendering.
func AccordionItem(props AccordionItemProps) *vdom.VNode {
	href := props.Href
	if href == "" {
		href = fmt.Sprintf("#item-%d", props.ID)
	}

	return el.Div(el.Props{
		"class":               accordionStyle.Class("item"),
		"data-accordion-item": props.ID,
		"data-active":         boolString(props.Active),
	},
		el.A(el.Props{"class": accordionStyle.Class("header"), "href": href},
			el.Span(el.Props{"class": accordionStyle.Class("number")}, el.Textf("0%d", props.ID)),
			el.Div(el.Props{"class": accordionStyle.Class("heading")},
				el.H3(el.Props{"class": accordionStyle.Class("title")}, el.Text(props.Title)),
				el.Div(el.Props{"class": accordionStyle.Class("subtitle")}, el.Text(props.Subtitle)),
			),
			el.Span(el.Props{"class": accordionStyle.Class("toggle"), "aria-hidden": "true"},
				el.Span(el.Props{"class": accordionStyle.Class("plus")}, Icon("plus", 16, "")),
				el.Span(el.Props{"class": accordionStyle.Class("minus")}, Icon("minus", 16, "")),
			),
		),
		el.Div(el.Props{"class": accordionStyle.Class("content")},
			el.Div(el.Props{"class": accordionStyle.Class("copy")},
				el.Span(el.Props{"class": accordionStyle.Class("label")}, Icon(props.Icon, 18, ""), el.Text("Core Feature")),
				el.P(el.Props{"class": accordionStyle.Class("desc")}, el.Text(props.Body)),
				props.Action,
			),
			el.If(props.Graphic != nil, el.Div(el.Props{"class": accordionStyle.Class("graphic")}, props.Graphic)),
		),
	)
}
