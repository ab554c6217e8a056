package routes

import (
	"fmt"

	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var servicesStyle = styling.Define(`
.page { padding: 10rem 0 6rem; }
.intro { text-align: center; margin-bottom: 6rem; }
.badge {
	display: inline-block;
	margin-bottom: 1.5rem;
	padding: 0.35rem 0.9rem;
	border-radius: 9999px;
	border: 1px solid rgba(168, 85, 247, 0.4);
	background: rgba(126, 34, 206, 0.1);
	font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
	font-size: 0.75rem;
	letter-spacing: 0.2em;
	color: #c084fc;
}
.heading { margin: 0 0 1.5rem; font-size: clamp(2.5rem, 7vw, 4.5rem); font-weight: 800; color: #fff; }
.lead { margin: 0 auto; max-width: 40rem; color: #94a3b8; line-height: 1.7; font-weight: 300; }
.rows { display: flex; flex-direction: column; gap: 8rem; }
.row { display: grid; gap: 3rem; align-items: center; }
@media (min-width: 1024px) {
	.row { grid-template-columns: 1fr 1fr; }
	.row[data-flip="true"] .media { order: 2; }
}
.media { position: relative; height: 24rem; border-radius: 1.5rem; overflow: hidden; border: 1px solid rgba(255, 255, 255, 0.1); }
.media img { width: 100%; height: 100%; object-fit: cover; filter: grayscale(30%); transition: transform 0.7s ease, filter 0.7s ease; }
.row:hover .media img { transform: scale(1.05); filter: none; }
.index { position: absolute; top: 1.5rem; left: 1.5rem; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.8rem; color: #F59E0B; }
.icon {
	display: inline-flex;
	align-items: center;
	justify-content: center;
	width: 3.5rem;
	height: 3.5rem;
	margin-bottom: 1.5rem;
	border-radius: 1rem;
	border: 1px solid rgba(245, 158, 11, 0.3);
	color: #F59E0B;
	background: rgba(245, 158, 11, 0.05);
}
.text h2 { margin: 0 0 1rem; font-size: 2.25rem; color: #fff; }
.text p { margin: 0 0 1.5rem; color: #94a3b8; line-height: 1.8; font-weight: 300; }
.tags { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.cta {
	margin-top: 8rem;
	padding: 4rem 2rem;
	text-align: center;
	border-radius: 2rem;
	border: 1px solid rgba(255, 255, 255, 0.08);
	background: linear-gradient(135deg, rgba(126, 34, 206, 0.15), rgba(245, 158, 11, 0.08));
}
.cta h3 { margin: 0 0 1rem; font-size: 2rem; color: #fff; }
.cta p { margin: 0 auto 2rem; max-width: 32rem; color: #94a3b8; }
`)

// Services renders the capability rows
func (a *App) Services(ctx server.Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("Services")
	site := a.Site()

	return el.Div(el.Props{"class": servicesStyle.Class("page")},
		el.Div(el.Props{"class": "container"},
			el.Div(el.Props{"class": el.Class(servicesStyle.Class("intro"), "reveal"), "data-reveal": ""},
				el.Span(el.Props{"class": servicesStyle.Class("badge")}, el.Text("SYSTEM_CAPABILITIES")),
				el.H1(el.Props{"class": servicesStyle.Class("heading")}, el.Text("Core Services")),
				el.P(el.Props{"class": servicesStyle.Class("lead")},
					el.Text("Comprehensive hardware solutions engineered for speed, reliability, and scale."),
				),
			),
			el.Div(el.Props{"class": servicesStyle.Class("rows")},
				el.Map(site.Capabilities, capabilityRow),
			),
			el.Div(el.Props{"class": el.Class(servicesStyle.Class("cta"), "reveal"), "data-reveal": ""},
				el.H3(nil, el.Text("Need a custom solution?")),
				el.P(nil, el.Text("Our engineering team can design a bespoke sourcing strategy for your production line.")),
				components.Button(components.ButtonProps{Text: "Get a Quote", Href: "/contact", Icon: "arrow-right", Size: components.ButtonLarge}),
			),
		),
	), nil
}

func capabilityRow(i int, c content.Capability) *vdom.VNode {
	return el.Article(el.Props{
		"class":       el.Class(servicesStyle.Class("row"), "reveal"),
		"data-reveal": "",
		"data-flip":   boolAttr(i%2 == 1),
	},
		el.Div(el.Props{"class": servicesStyle.Class("media")},
			el.Img(el.Props{"src": c.Image, "alt": c.Title, "loading": "lazy"}),
			el.Span(el.Props{"class": servicesStyle.Class("index")}, el.Text(fmt.Sprintf("0%d //", i+1))),
		),
		el.Div(el.Props{"class": servicesStyle.Class("text")},
			el.Span(el.Props{"class": servicesStyle.Class("icon")}, components.Icon(c.Icon, 28, "")),
			el.H2(nil, el.Text(c.Title)),
			el.P(nil, el.Text(c.Description)),
			el.Div(el.Props{"class": servicesStyle.Class("tags")},
				el.Map(c.Tags, func(_ int, tag string) *vdom.VNode { return components.Tag(tag) }),
			),
		),
	)
}
