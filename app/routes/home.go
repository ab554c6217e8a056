package routes

import (
	"fmt"
	"strconv"

	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/fx"
	"github.com/korden-tech/korden/pkg/scroll"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// SpotlightRadius is the hero title's reveal radius in pixels
const SpotlightRadius = 150

var homeStyle = styling.Define(`
.hero {
	position: relative;
	display: flex;
	align-items: center;
	justify-content: center;
	min-height: 100vh;
	overflow: hidden;
	text-align: center;
}
.ripple { position: absolute; inset: 0; width: 100%; height: 100%; }
.content { position: relative; z-index: 1; padding: 8rem 1.5rem 4rem; max-width: 64rem; }
.badge {
	display: inline-flex;
	align-items: center;
	gap: 0.5rem;
	padding: 0.4rem 1rem;
	margin-bottom: 1.5rem;
	border-radius: 9999px;
	border: 1px solid #334155;
	background: rgba(15, 23, 42, 0.8);
	color: #cbd5e1;
	font-size: 0.85rem;
	font-weight: 500;
}
.ping { width: 0.5rem; height: 0.5rem; border-radius: 9999px; background: #F59E0B; box-shadow: 0 0 0 0 rgba(245, 158, 11, 0.7); animation: ping 1.5s infinite; }
@keyframes ping { to { box-shadow: 0 0 0 8px rgba(245, 158, 11, 0); } }
.title {
	position: relative;
	margin: 0 0 2rem;
	font-size: clamp(2.75rem, 9vw, 6.5rem);
	font-weight: 800;
	line-height: 1;
	letter-spacing: -0.02em;
	cursor: default;
}
.line { display: block; }
.outline { color: transparent; -webkit-text-stroke: 2px #F59E0B; }
.fill {
	position: absolute;
	inset: 0;
	color: #fff;
	pointer-events: none;
	transition: -webkit-mask-image 0.1s linear;
}
.fill .line:last-child {
	color: transparent;
	background: linear-gradient(90deg, #c084fc, #F59E0B);
	-webkit-background-clip: text;
	background-clip: text;
}
.subtitle { margin: 0 auto 2.5rem; max-width: 42rem; color: #94a3b8; font-size: 1.15rem; line-height: 1.7; }
.buttons { display: flex; flex-wrap: wrap; gap: 1rem; justify-content: center; }
.features { padding: 8rem 0; }
.globe, .chip {
	position: absolute;
	inset: 0;
	display: flex;
	align-items: center;
	justify-content: center;
	color: #c084fc;
}
.ring {
	position: absolute;
	width: 8rem;
	height: 8rem;
	border-radius: 9999px;
	border: 1px solid rgba(168, 85, 247, 0.4);
	animation: wave 3s ease-out infinite;
}
.ring:nth-child(2) { animation-delay: 1s; }
.ring:nth-child(3) { animation-delay: 2s; }
@keyframes wave { from { transform: scale(0.6); opacity: 1; } to { transform: scale(2.2); opacity: 0; } }
.scanner { position: absolute; inset: 0; width: 100%; height: 100%; }
.chip {
	background-image: radial-gradient(#7E22CE 1px, transparent 1px);
	background-size: 20px 20px;
}
.core {
	position: relative;
	display: flex;
	align-items: center;
	justify-content: center;
	width: 8rem;
	height: 8rem;
	border-radius: 1.5rem;
	border: 1px solid rgba(245, 158, 11, 0.4);
	background: rgba(5, 5, 5, 0.9);
	box-shadow: 0 0 40px rgba(126, 34, 206, 0.35);
}
.spark { position: absolute; right: 1.5rem; bottom: 1.5rem; color: #F59E0B; }
.stream {
	position: absolute;
	height: 2px;
	width: 40%;
	left: -40%;
	background: linear-gradient(90deg, transparent, #F59E0B);
	animation: stream 2.5s linear infinite;
}
.stream:nth-of-type(2) { top: 65%; animation-duration: 4s; background: linear-gradient(90deg, transparent, #a855f7); }
@keyframes stream { to { left: 100%; } }
.services { position: relative; height: 400vh; }
.sticky { position: sticky; top: 0; height: 100vh; display: flex; align-items: center; overflow: hidden; }
.split { display: grid; gap: 3rem; align-items: center; }
@media (min-width: 1024px) { .split { grid-template-columns: 5fr 7fr; } }
.cards { display: flex; flex-direction: column; gap: 1rem; }
.item {
	position: relative;
	overflow: hidden;
	padding: 1.25rem 1.5rem;
	border-radius: 1rem;
	border: 1px solid rgba(255, 255, 255, 0.05);
	background: transparent;
	text-align: left;
	color: inherit;
	font: inherit;
	cursor: pointer;
	transition: all 0.5s ease;
}
.item:hover { background: rgba(255, 255, 255, 0.05); }
.item[data-active="true"] {
	background: rgba(255, 255, 255, 0.05);
	border-color: rgba(245, 158, 11, 0.5);
	box-shadow: 0 0 30px rgba(245, 158, 11, 0.1);
	transform: translateX(0.5rem);
}
.bar { position: absolute; left: 0; top: 0; height: 2px; background: linear-gradient(90deg, #9333EA, #F59E0B); }
.name { margin: 0; display: flex; justify-content: space-between; font-size: 1.15rem; font-weight: 700; color: #64748b; }
.item[data-active="true"] .name { color: #fff; }
.desc { margin: 0.5rem 0 0; font-size: 0.85rem; color: #475569; }
.item[data-active="true"] .desc { color: #cbd5e1; }
.more { margin-top: 1rem; }
.display { position: relative; height: 60vh; min-height: 22rem; border-radius: 1.5rem; overflow: hidden; border: 1px solid rgba(255, 255, 255, 0.1); }
.panel { position: absolute; inset: 0; opacity: 0; transform: scale(1.05); transition: opacity 0.7s ease, transform 0.7s ease; }
.panel[data-active="true"] { opacity: 1; transform: scale(1); z-index: 1; }
.panel img { width: 100%; height: 100%; object-fit: cover; filter: grayscale(40%); }
.shade { position: absolute; inset: 0; background: linear-gradient(0deg, #050505 10%, rgba(5, 5, 5, 0.2) 70%); }
.caption { position: absolute; left: 0; right: 0; bottom: 0; padding: 2.5rem; }
.module { font-size: 0.75rem; letter-spacing: 0.25em; text-transform: uppercase; color: #F59E0B; }
.caption h3 { margin: 0.75rem 0; font-size: 2rem; color: #fff; }
.caption p { margin: 0; max-width: 36rem; color: #cbd5e1; line-height: 1.6; }
.glyph { position: absolute; top: 2rem; right: 2rem; color: #F59E0B; }
`)

// displaySuffix follows every service description in the scroll display
const displaySuffix = " Korden Technologies ensures top-tier quality control and seamless integration for your supply chain needs."

// Home renders the landing page
func (a *App) Home(ctx server.Ctx) (*vdom.VNode, error) {
	site := a.Site()
	active := activeFeature(ctx.Query().Get("feature"), len(site.Features))

	return el.Fragment(
		a.hero(),
		a.features(site, active),
		a.servicesScroll(site),
	), nil
}

// activeFeature reads ?feature=N, falling back to the default item
func activeFeature(raw string, n int) int {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 || id > n {
		return content.DefaultFeature
	}
	return id
}

func (a *App) hero() *vdom.VNode {
	lines := func() []*vdom.VNode {
		return []*vdom.VNode{
			el.Span(el.Props{"class": homeStyle.Class("line")}, el.Text("Powering the")),
			el.Span(el.Props{"class": homeStyle.Class("line")}, el.Text("Next Generation")),
		}
	}
	mask := fmt.Sprintf("-webkit-mask-image: %[1]s; mask-image: %[1]s", fx.DefaultMask)

	return el.Section(el.Props{"class": homeStyle.Class("hero")},
		el.Canvas(el.Props{"class": homeStyle.Class("ripple"), "data-fx": "ripple", "aria-hidden": "true"}),
		el.Div(el.Props{"class": homeStyle.Class("content")},
			el.Div(el.Props{"class": homeStyle.Class("badge")},
				el.Span(el.Props{"class": homeStyle.Class("ping")}),
				el.Text("ISO Certified • Global Sourcing Partner"),
			),
			el.H1(el.Props{"class": homeStyle.Class("title"), "data-spotlight": SpotlightRadius},
				el.Span(el.Props{"class": homeStyle.Class("outline")}, lines()...),
				el.Span(el.Props{"class": homeStyle.Class("fill"), "data-spotlight-fill": "", "style": mask, "aria-hidden": "true"}, lines()...),
			),
			el.P(el.Props{"class": homeStyle.Class("subtitle")},
				el.Text("Delivering the advanced electronic components that drive modern industry. Your strategic partner for semiconductors, sensors, and next-gen supply chain solutions."),
			),
			el.Div(el.Props{"class": homeStyle.Class("buttons")},
				components.Button(components.ButtonProps{Text: "Explore Products", Href: "/products", Icon: "arrow-right", Size: components.ButtonLarge}),
				components.Button(components.ButtonProps{Text: "Contact Sales", Href: "/contact", Variant: components.ButtonSecondary, Size: components.ButtonLarge}),
			),
		),
	)
}

func (a *App) features(site *content.Site, active int) *vdom.VNode {
	items := make([]*vdom.VNode, len(site.Features))
	for i, f := range site.Features {
		items[i] = components.AccordionItem(components.AccordionItemProps{
			ID:       f.ID,
			Title:    f.Title,
			Subtitle: f.Subtitle,
			Body:     f.Description,
			Icon:     f.Icon,
			Active:   f.ID == active,
			Href:     fmt.Sprintf("/?feature=%d#features", f.ID),
			Graphic:  graphic(f.Graphic),
			Action: components.Button(components.ButtonProps{
				Text:    "Explore Capability",
				Href:    "/services",
				Variant: components.ButtonGhost,
				Icon:    "arrow-up-right",
			}),
		})
	}

	return el.Section(el.Props{"class": homeStyle.Class("features"), "id": "features"},
		el.Div(el.Props{"class": "container"},
			components.SectionTitle("The Korden Advantage", "Why Choose Us", false),
			components.Accordion("features-accordion", items...),
		),
	)
}

func graphic(g content.Graphic) *vdom.VNode {
	switch g {
	case content.GraphicGlobe:
		return el.Div(el.Props{"class": homeStyle.Class("globe")},
			el.Span(el.Props{"class": homeStyle.Class("ring")}),
			el.Span(el.Props{"class": homeStyle.Class("ring")}),
			el.Span(el.Props{"class": homeStyle.Class("ring")}),
			components.Icon("globe", 96, ""),
		)
	case content.GraphicScanner:
		return el.Canvas(el.Props{"class": homeStyle.Class("scanner"), "data-fx": "scanner", "aria-hidden": "true"})
	case content.GraphicChip:
		return el.Div(el.Props{"class": homeStyle.Class("chip")},
			el.Span(el.Props{"class": homeStyle.Class("stream")}),
			el.Span(el.Props{"class": homeStyle.Class("stream")}),
			el.Div(el.Props{"class": homeStyle.Class("core")},
				components.Icon("cpu", 64, ""),
				el.Span(el.Props{"class": homeStyle.Class("spark")}, components.Icon("zap", 20, "")),
			),
		)
	}
	return nil
}

func (a *App) servicesScroll(site *content.Site) *vdom.VNode {
	services := site.Services
	n := len(services)
	bars := scroll.Bars(scroll.Map(0, n), n)

	cards := make([]*vdom.VNode, n)
	panels := make([]*vdom.VNode, n)
	for i, s := range services {
		active := boolAttr(i == 0)
		cards[i] = el.Button(el.Props{
			"class":            homeStyle.Class("item"),
			"type":             "button",
			"data-scroll-item": i,
			"data-active":      active,
		},
			el.Div(el.Props{
				"class":           homeStyle.Class("bar"),
				"data-scroll-bar": i,
				"style":           barStyle(bars[i]),
			}),
			el.H3(el.Props{"class": homeStyle.Class("name")}, el.Text(s.Title)),
			el.P(el.Props{"class": homeStyle.Class("desc")}, el.Text(s.Description)),
		)
		panels[i] = el.Div(el.Props{"class": homeStyle.Class("panel"), "data-scroll-panel": i, "data-active": active},
			el.Img(el.Props{
				"src":     fmt.Sprintf("https://picsum.photos/1000/800?random=%d", i+100),
				"alt":     s.Title,
				"loading": "lazy",
			}),
			el.Div(el.Props{"class": homeStyle.Class("shade")}),
			el.Span(el.Props{"class": homeStyle.Class("glyph")}, components.Icon(s.Icon, 40, "")),
			el.Div(el.Props{"class": homeStyle.Class("caption")},
				el.Span(el.Props{"class": homeStyle.Class("module")}, el.Textf("Service Module 0%d", i+1)),
				el.H3(nil, el.Text(s.Title)),
				el.P(nil, el.Text(s.Description+displaySuffix)),
			),
		)
	}

	return el.Section(el.Props{
		"class":               homeStyle.Class("services"),
		"id":                  "services",
		"data-scroll-section": "",
		"data-scroll-count":   n,
	},
		el.Div(el.Props{"class": homeStyle.Class("sticky")},
			el.Div(el.Props{"class": "container"},
				components.SectionTitle("Comprehensive Solutions", "Services", false),
				el.Div(el.Props{"class": homeStyle.Class("split")},
					el.Div(el.Props{"class": homeStyle.Class("cards")},
						el.Fragment(cards...),
						el.Div(el.Props{"class": homeStyle.Class("more")},
							components.Button(components.ButtonProps{Text: "View All Services", Href: "/services", Variant: components.ButtonSecondary}),
						),
					),
					el.Div(el.Props{"class": homeStyle.Class("display")}, panels...),
				),
			),
		),
	)
}

func barStyle(b scroll.Bar) string {
	opacity := 0
	if b.Visible {
		opacity = 1
	}
	return fmt.Sprintf("width: %g%%; opacity: %d", b.Percent(), opacity)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
