package routes

import (
	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

var aboutStyle = styling.Define(`
.page { position: relative; overflow: hidden; padding: 10rem 0 6rem; }
.halo {
	position: absolute;
	top: -20rem;
	left: 50%;
	width: 60rem;
	height: 60rem;
	margin-left: -30rem;
	border-radius: 9999px;
	background: radial-gradient(circle, rgba(126, 34, 206, 0.25), transparent 65%);
	pointer-events: none;
}
.intro { position: relative; text-align: center; max-width: 56rem; margin: 0 auto 8rem; }
.eyebrow {
	margin: 0 0 1.5rem;
	font-size: 0.85rem;
	letter-spacing: 0.2em;
	text-transform: uppercase;
	color: transparent;
	background: linear-gradient(90deg, #60a5fa, #c084fc, #fbbf24);
	-webkit-background-clip: text;
	background-clip: text;
}
.headline { margin: 0 0 2rem; font-size: clamp(2.5rem, 7vw, 4.75rem); font-weight: 800; line-height: 1.1; color: #fff; }
.fade {
	display: block;
	color: transparent;
	background: linear-gradient(180deg, #fff, #64748b);
	-webkit-background-clip: text;
	background-clip: text;
}
.lead { margin: 0 auto; max-width: 42rem; font-size: 1.2rem; line-height: 1.7; color: #94a3b8; font-weight: 300; }
.story { display: grid; gap: 4rem; align-items: center; margin-bottom: 8rem; }
@media (min-width: 1024px) { .story { grid-template-columns: 1fr 1fr; } }
.section { display: flex; align-items: center; gap: 0.75rem; margin-bottom: 1.5rem; }
.section::before { content: ""; width: 3rem; height: 1px; background: #a855f7; }
.section span { font-size: 0.75rem; font-weight: 700; letter-spacing: 0.2em; text-transform: uppercase; color: #c084fc; }
.prose h2 { margin: 0 0 1.5rem; font-size: 2.25rem; line-height: 1.2; color: #fff; }
.prose em { color: #64748b; }
.prose p { color: #94a3b8; line-height: 1.8; font-weight: 300; }
.highlights { display: flex; flex-wrap: wrap; gap: 1.5rem; padding-top: 1rem; }
.highlight { display: flex; align-items: center; gap: 0.75rem; }
.highlight svg { color: #c084fc; }
.highlight strong { display: block; color: #fff; font-size: 0.9rem; font-weight: 500; }
.highlight div > span { color: #64748b; font-size: 0.75rem; }
.photo { position: relative; height: 28rem; border-radius: 1.5rem; overflow: hidden; border: 1px solid rgba(255, 255, 255, 0.1); }
.photo img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.7s ease; }
.photo:hover img { transform: scale(1.05); }
.place { position: absolute; left: 1.5rem; right: 1.5rem; bottom: 1.5rem; padding: 1rem 1.25rem; border-radius: 1rem; background: rgba(0, 0, 0, 0.6); backdrop-filter: blur(8px); }
.place p { display: block; margin-bottom: 0.25rem; font-size: 0.7rem; font-weight: 600; letter-spacing: 0.2em; text-transform: uppercase; color: #fbbf24; }
.place > span { color: #fff; display: inline-flex; gap: 0.5rem; align-items: center; }
.bento { display: grid; gap: 1.5rem; margin-bottom: 8rem; }
@media (min-width: 768px) { .bento { grid-template-columns: repeat(3, 1fr); } .wide { grid-column: span 2; } }
.tile { min-height: 17.5rem; }
.tile p { margin: 0; color: #94a3b8; line-height: 1.7; font-weight: 300; }
.tile svg { color: #F59E0B; }
.stats { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fit, minmax(10rem, 1fr)); text-align: center; }
.stat { padding: 2rem 1rem; border-radius: 1rem; border: 1px solid rgba(255, 255, 255, 0.05); background: rgba(255, 255, 255, 0.02); }
.stat p { margin: 0 0 0.5rem; font-size: 0.75rem; letter-spacing: 0.2em; text-transform: uppercase; color: #64748b; }
.stat h4 { margin: 0; font-size: 2.5rem; font-weight: 800; color: #fff; }
`)

// About renders the company story
func (a *App) About(ctx server.Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("About")
	about := a.Site().About

	return el.Div(el.Props{"class": aboutStyle.Class("page")},
		el.Div(el.Props{"class": aboutStyle.Class("halo"), "aria-hidden": "true"}),
		el.Div(el.Props{"class": "container"},
			el.Div(el.Props{"class": el.Class(aboutStyle.Class("intro"), "reveal"), "data-reveal": ""},
				el.H4(el.Props{"class": aboutStyle.Class("eyebrow")}, el.Text(about.Eyebrow)),
				el.H1(el.Props{"class": aboutStyle.Class("headline")},
					el.Text(about.Headline),
					el.Span(el.Props{"class": aboutStyle.Class("fade")}, el.Text(about.Accent)),
				),
				el.P(el.Props{"class": aboutStyle.Class("lead")}, el.Text(about.Lead)),
			),
			el.Div(el.Props{"class": aboutStyle.Class("story")},
				el.Div(el.Props{"class": "reveal", "data-reveal": "", "style": "transition-delay: 200ms"},
					el.Div(el.Props{"class": aboutStyle.Class("section")}, el.Span(nil, el.Text(about.Section))),
					el.Div(el.Props{"class": aboutStyle.Class("prose")}, el.Raw(about.Story)),
					el.Div(el.Props{"class": aboutStyle.Class("highlights")},
						el.Map(about.Highlights, func(_ int, h content.Highlight) *vdom.VNode {
							return el.Div(el.Props{"class": aboutStyle.Class("highlight")},
								components.Icon(h.Icon, 18, ""),
								el.Div(nil, el.Strong(nil, el.Text(h.Title)), el.Span(nil, el.Text(h.Note))),
							)
						}),
					),
				),
				el.Div(el.Props{"class": el.Class(aboutStyle.Class("photo"), "reveal"), "data-reveal": "", "style": "transition-delay: 400ms"},
					el.Img(el.Props{"src": about.Image, "alt": about.ImageAlt, "loading": "lazy"}),
					el.Div(el.Props{"class": aboutStyle.Class("place")},
						el.P(nil, el.Text("Headquarters")),
						el.Span(nil, components.Icon("map-pin", 16, ""), el.Text(about.Location)),
					),
				),
			),
			el.Div(el.Props{"class": aboutStyle.Class("bento")},
				el.Map(about.Cards, func(i int, c content.Card) *vdom.VNode {
					glow := components.GlowPurple
					if c.Accent {
						glow = components.GlowAmber
					}
					return components.Card(components.CardProps{
						Title: c.Title,
						Glow:  glow,
						Hover: true,
						Class: el.Class(aboutStyle.Class("tile"), el.ClassIf(c.Wide, aboutStyle.Class("wide")), "reveal"),
						Attrs: vdom.Props{"data-reveal": ""},
					},
						components.Icon(c.Icon, 28, ""),
						el.P(nil, el.Text(c.Body)),
					)
				}),
			),
			el.Div(el.Props{"class": el.Class(aboutStyle.Class("stats"), "reveal"), "data-reveal": ""},
				el.Map(about.Stats, func(_ int, s content.Stat) *vdom.VNode {
					return el.Div(el.Props{"class": aboutStyle.Class("stat")},
						el.P(nil, el.Text(s.Label)),
						el.H4(nil, el.Text(s.Value)),
					)
				}),
			),
		),
	), nil
}
