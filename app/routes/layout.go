package routes

import (
	"strconv"
	"strings"

	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var shellStyle = styling.Define(`
.navbar {
	position: fixed;
	top: 0;
	left: 0;
	right: 0;
	z-index: 50;
	transition: transform 0.4s ease, background 0.4s ease, padding 0.4s ease;
	padding: 1.5rem 0;
}
.navbar[data-scrolled="true"] {
	padding: 0.9rem 0;
	background: rgba(5, 5, 10, 0.8);
	backdrop-filter: blur(16px);
	border-bottom: 1px solid rgba(255, 255, 255, 0.05);
}
.navbar[data-hidden="true"] { transform: translateY(-100%); }
.bar { display: flex; align-items: center; justify-content: space-between; gap: 2rem; }
.logo {
	display: inline-flex;
	align-items: center;
	gap: 0.6rem;
	font-weight: 800;
	font-size: 1.35rem;
	letter-spacing: 0.2em;
	color: #fff;
	text-decoration: none;
}
.logo svg { color: #F59E0B; }
.links { display: none; gap: 2.25rem; align-items: center; }
.link {
	position: relative;
	color: #cbd5e1;
	text-decoration: none;
	font-size: 0.95rem;
	font-weight: 500;
	transition: color 0.2s ease;
}
.link:hover { color: #fff; }
.link[aria-current="page"] { color: #F59E0B; }
.link[aria-current="page"]::after {
	content: "";
	position: absolute;
	left: 50%;
	bottom: -0.6rem;
	width: 4px;
	height: 4px;
	margin-left: -2px;
	border-radius: 9999px;
	background: #F59E0B;
}
.cta { display: none; }
.toggle {
	display: inline-flex;
	background: none;
	border: 0;
	color: #fff;
	cursor: pointer;
}
.toggle .close, .navbar[data-open="true"] .toggle .open { display: none; }
.navbar[data-open="true"] .toggle .close { display: inline-flex; }
.mobile {
	display: none;
	flex-direction: column;
	gap: 1.25rem;
	padding: 1.5rem;
	margin-top: 1rem;
	background: rgba(5, 5, 10, 0.95);
	border-top: 1px solid rgba(255, 255, 255, 0.05);
}
.navbar[data-open="true"] .mobile { display: flex; }
@media (min-width: 768px) {
	.links, .cta { display: flex; }
	.toggle { display: none; }
	.navbar[data-open="true"] .mobile { display: none; }
}
.footer {
	position: relative;
	overflow: hidden;
	padding: 6rem 0 2rem;
	background: #030305;
	border-top: 1px solid rgba(255, 255, 255, 0.05);
}
.grid { position: absolute; inset: 0; width: 100%; height: 100%; opacity: 0.8; }
.inner { position: relative; z-index: 1; pointer-events: none; }
.inner a, .inner button { pointer-events: auto; }
.hero { text-align: center; margin-bottom: 5rem; }
.badge {
	display: inline-flex;
	align-items: center;
	gap: 0.5rem;
	padding: 0.4rem 1rem;
	border-radius: 9999px;
	border: 1px solid rgba(245, 158, 11, 0.3);
	background: rgba(245, 158, 11, 0.05);
	color: #F59E0B;
	font-size: 0.75rem;
	letter-spacing: 0.2em;
	text-transform: uppercase;
}
.headline { margin: 1.5rem 0 2rem; font-size: clamp(2.5rem, 8vw, 6rem); font-weight: 800; line-height: 0.95; color: #fff; }
.headline span { display: block; }
.accent {
	color: transparent;
	background: linear-gradient(90deg, #a855f7, #F59E0B);
	-webkit-background-clip: text;
	background-clip: text;
}
.columns {
	display: grid;
	gap: 3rem;
	grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr));
	padding-bottom: 3rem;
	border-bottom: 1px solid rgba(255, 255, 255, 0.05);
}
.heading { margin: 0 0 1.25rem; font-size: 0.75rem; letter-spacing: 0.25em; text-transform: uppercase; color: #64748b; }
.list { list-style: none; margin: 0; padding: 0; display: flex; flex-direction: column; gap: 0.75rem; }
.list a { color: #cbd5e1; text-decoration: none; }
.list a:hover { color: #F59E0B; }
.blurb { color: #94a3b8; line-height: 1.7; margin: 1rem 0 1.5rem; max-width: 18rem; }
.socials { display: flex; gap: 0.75rem; }
.social {
	display: inline-flex;
	padding: 0.6rem;
	border-radius: 9999px;
	border: 1px solid rgba(255, 255, 255, 0.1);
	color: #94a3b8;
}
.social:hover { color: #F59E0B; border-color: #F59E0B; }
.label { display: block; font-size: 0.7rem; letter-spacing: 0.2em; color: #a855f7; margin-bottom: 0.25rem; }
.value { color: #e2e8f0; margin: 0 0 1rem; line-height: 1.6; }
.top {
	display: inline-flex;
	align-items: center;
	gap: 0.5rem;
	margin-top: 1rem;
	background: none;
	border: 1px solid rgba(255, 255, 255, 0.1);
	border-radius: 9999px;
	padding: 0.5rem 1rem;
	color: #cbd5e1;
	cursor: pointer;
}
.top:hover { border-color: #F59E0B; color: #F59E0B; }
.bottom {
	display: flex;
	flex-wrap: wrap;
	gap: 1rem;
	justify-content: space-between;
	padding-top: 2rem;
	font-size: 0.75rem;
	letter-spacing: 0.15em;
	color: #64748b;
}
.status { display: inline-flex; align-items: center; gap: 0.5rem; }
.dot { width: 0.5rem; height: 0.5rem; border-radius: 9999px; background: #22c55e; animation: pulse 2s ease-in-out infinite; }
@keyframes pulse { 50% { opacity: 0.4; } }
`)

// title formats the document title for a page
func (a *App) title(page string) string {
	name := a.Site().Company.Name
	if page == "" {
		return name
	}
	return page + " | " + name
}

// Layout wraps every page in the document shell: head, navbar, footer
// and the boot script.
func (a *App) Layout(ctx server.Ctx, child *vdom.VNode) *vdom.VNode {
	site := a.Site()

	body := vdom.Props{"data-path": ctx.Path()}
	if a.liveEnabled() {
		body["data-live-path"] = a.livePath
	}
	if a.assets.Wasm != "" {
		body["data-wasm"] = a.assets.Wasm
	}

	return el.Html(el.Props{"lang": "en"},
		el.Head(nil,
			el.Meta(el.Props{"charset": "utf-8"}),
			el.Meta(el.Props{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
			el.Meta(el.Props{"name": "description", "content": site.Company.Tagline}),
			el.Title(nil, el.Text(a.title(ctx.Title()))),
			el.Link(el.Props{"rel": "stylesheet", "href": a.assets.Stylesheet}),
			el.Style(nil, el.Text(styling.GetAllCSS())),
			el.Script(el.Props{"type": "application/json", "id": "korden-fx"}, el.Text(a.fxJSON)),
			el.If(a.assets.Wasm != "", el.Script(el.Props{"src": a.assets.WasmExec, "defer": true})),
			el.Script(el.Props{"src": a.assets.Boot, "defer": true}),
		),
		el.Body(body,
			a.navbar(site, ctx.Path()),
			el.Main(el.Props{"id": "main"}, child),
			a.footer(site),
		),
	)
}

func logo(site *content.Site) *vdom.VNode {
	return el.A(el.Props{"class": shellStyle.Class("logo"), "href": "/", "aria-label": site.Company.Name},
		components.Icon("circuit-board", 28, ""),
		el.Text(site.Company.Short),
	)
}

func navLink(link content.NavLink, current string, class string) *vdom.VNode {
	props := el.Props{"class": class, "href": link.Path}
	if link.Path == current {
		props["aria-current"] = "page"
	}
	return el.A(props, el.Text(link.Label))
}

func (a *App) navbar(site *content.Site, current string) *vdom.VNode {
	return el.Header(el.Props{"class": shellStyle.Class("navbar"), "data-navbar": "", "data-open": "false"},
		el.Div(el.Props{"class": el.Class("container", shellStyle.Class("bar"))},
			logo(site),
			el.Nav(el.Props{"class": shellStyle.Class("links"), "aria-label": "Primary"},
				el.Map(site.Nav, func(_ int, l content.NavLink) *vdom.VNode {
					return navLink(l, current, shellStyle.Class("link"))
				}),
			),
			el.Div(el.Props{"class": shellStyle.Class("cta")},
				components.Button(components.ButtonProps{Text: "Let's Talk", Href: "/contact", Size: components.ButtonSmall}),
			),
			el.Button(el.Props{
				"class":           shellStyle.Class("toggle"),
				"type":            "button",
				"aria-label":      "Toggle menu",
				"data-nav-toggle": "",
			},
				el.Span(el.Props{"class": shellStyle.Class("open")}, components.Icon("menu", 26, "")),
				el.Span(el.Props{"class": shellStyle.Class("close")}, components.Icon("x", 26, "")),
			),
		),
		el.Nav(el.Props{"class": shellStyle.Class("mobile"), "aria-label": "Mobile"},
			el.Map(site.Nav, func(_ int, l content.NavLink) *vdom.VNode {
				return navLink(l, current, shellStyle.Class("link"))
			}),
			components.Button(components.ButtonProps{Text: "Get Quote", Href: "/contact"}),
		),
	)
}

func (a *App) footer(site *content.Site) *vdom.VNode {
	f := site.Footer
	c := site.Company
	year := strconv.Itoa(a.now().Year())

	column := func(heading string, children ...*vdom.VNode) *vdom.VNode {
		kids := append([]*vdom.VNode{el.H4(el.Props{"class": shellStyle.Class("heading")}, el.Text(heading))}, children...)
		return el.Div(nil, kids...)
	}
	links := func(items []content.NavLink) *vdom.VNode {
		return el.Ul(el.Props{"class": shellStyle.Class("list")},
			el.Map(items, func(_ int, l content.NavLink) *vdom.VNode {
				return el.Li(nil, el.A(el.Props{"href": l.Path}, el.Text(l.Label)))
			}),
		)
	}

	headline := make([]*vdom.VNode, len(f.Headline))
	for i, line := range f.Headline {
		class := ""
		if i == len(f.Headline)-1 {
			class = shellStyle.Class("accent")
		}
		headline[i] = el.Span(el.Props{"class": class}, el.Text(line))
	}

	return el.Footer(el.Props{"class": shellStyle.Class("footer")},
		el.Canvas(el.Props{"class": shellStyle.Class("grid"), "data-fx": "elastic", "aria-hidden": "true"}),
		el.Div(el.Props{"class": el.Class("container", shellStyle.Class("inner"))},
			el.Div(el.Props{"class": shellStyle.Class("hero")},
				el.Span(el.Props{"class": shellStyle.Class("badge")}, components.Icon("globe", 14, ""), el.Text(f.Badge)),
				el.H2(el.Props{"class": shellStyle.Class("headline")}, headline...),
				components.Button(components.ButtonProps{Text: f.CTA.Label, Href: f.CTA.Path, Size: components.ButtonLarge, Icon: "arrow-right"}),
			),
			el.Div(el.Props{"class": shellStyle.Class("columns")},
				el.Div(nil,
					logo(site),
					el.P(el.Props{"class": shellStyle.Class("blurb")}, el.Text(f.Blurb)),
					el.Div(el.Props{"class": shellStyle.Class("socials")},
						el.Map(f.Socials, func(_ int, s content.Social) *vdom.VNode {
							return el.A(el.Props{
								"class":      shellStyle.Class("social"),
								"href":       s.URL,
								"aria-label": s.Label,
								"target":     "_blank",
								"rel":        "noreferrer",
							}, components.Icon(s.Icon, 18, ""))
						}),
					),
				),
				column("Explore", links(site.Nav)),
				column("Office",
					el.Span(el.Props{"class": shellStyle.Class("label")}, el.Text("LOCATION")),
					el.P(el.Props{"class": shellStyle.Class("value")}, el.Text(c.Address)),
					el.Span(el.Props{"class": shellStyle.Class("label")}, el.Text("INQUIRIES")),
					el.P(el.Props{"class": shellStyle.Class("value")},
						el.A(el.Props{"href": "mailto:" + c.Email}, el.Text(c.Email)),
					),
				),
				column("Legal",
					links(f.Legal),
					el.Button(el.Props{"class": shellStyle.Class("top"), "type": "button", "data-back-to-top": ""},
						el.Text("Back to Top"), components.Icon("arrow-up", 14, ""),
					),
				),
			),
			el.Div(el.Props{"class": shellStyle.Class("bottom")},
				el.Span(nil, el.Textf("© %s %s.", year, strings.ToUpper(c.Name))),
				el.Span(el.Props{"class": shellStyle.Class("status")},
					el.Span(el.Props{"class": shellStyle.Class("dot")}),
					el.Text(f.Status),
				),
				el.Span(nil, el.Text(c.City)),
			),
		),
	)
}
