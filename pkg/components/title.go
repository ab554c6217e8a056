package components

import (
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var titleStyle = styling.Define(`
.wrap { margin-bottom: 3rem; }
.center { text-align: center; }
.eyebrow {
	display: inline-block;
	margin-bottom: 0.75rem;
	font-size: 0.8rem;
	font-weight: 700;
	letter-spacing: 0.3em;
	text-transform: uppercase;
	color: #F59E0B;
}
.title {
	margin: 0;
	font-size: clamp(2rem, 5vw, 3.25rem);
	font-weight: 800;
	line-height: 1.1;
	color: #fff;
}
.rule {
	width: 5rem;
	height: 3px;
	margin-top: 1.25rem;
	border-radius: 9999px;
	background: linear-gradient(90deg, #9333EA, #F59E0B);
}
.center .rule { margin-left: auto; margin-right: auto; }
`)

// SectionTitle is the eyebrow + heading pair that opens a section
func SectionTitle(title, subtitle string, center bool) *vdom.VNode {
	return el.Div(el.Props{"class": titleStyle.Classes("wrap", el.ClassIf(center, "center"))},
		el.If(subtitle != "", el.Span(el.Props{"class": titleStyle.Class("eyebrow")}, el.Text(subtitle))),
		el.H2(el.Props{"class": titleStyle.Class("title")}, el.Text(title)),
		el.Div(el.Props{"class": titleStyle.Class("rule")}),
	)
}
