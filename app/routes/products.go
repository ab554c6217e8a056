package routes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/korden-tech/korden/pkg/catalog"
	"github.com/korden-tech/korden/pkg/components"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/reactive"
	"github.com/korden-tech/korden/pkg/server"
	"github.com/korden-tech/korden/pkg/styling"
	"github.com/korden-tech/korden/pkg/ui/el"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// ProductsView is the live region holding the pills and the grid
const ProductsView = "products"

var productsStyle = styling.Define(`
.page { padding: 10rem 0 6rem; min-height: 100vh; }
.toolbar { display: flex; flex-direction: column; gap: 1.5rem; margin-bottom: 3rem; }
.search { position: relative; max-width: 28rem; }
.search svg { position: absolute; left: 1rem; top: 50%; transform: translateY(-50%); color: #64748b; pointer-events: none; }
.search input {
	width: 100%;
	padding: 0.85rem 1rem 0.85rem 2.75rem;
	border-radius: 9999px;
	border: 1px solid rgba(255, 255, 255, 0.1);
	background: rgba(255, 255, 255, 0.04);
	color: #fff;
	font: inherit;
}
.search input:focus { outline: none; border-color: #a855f7; box-shadow: 0 0 0 3px rgba(168, 85, 247, 0.2); }
.region { min-height: 20rem; }
.pills { display: flex; flex-wrap: wrap; gap: 0.75rem; }
.grid { display: grid; gap: 1.5rem; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); }
.media { position: relative; height: 12rem; overflow: hidden; }
.media img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.5s ease; }
.media:hover img { transform: scale(1.1); }
.category {
	position: absolute;
	top: 0.75rem;
	left: 0.75rem;
	padding: 0.25rem 0.6rem;
	border-radius: 0.4rem;
	background: rgba(0, 0, 0, 0.7);
	font-size: 0.7rem;
	font-weight: 600;
	color: #F59E0B;
}
.desc { margin: 0 0 1rem; font-size: 0.85rem; color: #94a3b8; line-height: 1.6; }
.specs { display: flex; flex-wrap: wrap; gap: 0.4rem; margin-bottom: 1.25rem; }
.count { margin: 0 0 1.5rem; font-size: 0.8rem; color: #64748b; }
.empty { padding: 5rem 1rem; text-align: center; color: #64748b; }
.empty p { margin: 0 0 1.5rem; font-size: 1.1rem; }
`)

// ProductsPage renders the catalog filtered by ?category=&q=
func (a *App) ProductsPage(ctx server.Ctx) (*vdom.VNode, error) {
	ctx.SetTitle("Products")
	filter := catalog.ParseFilter(ctx.Query())

	region := el.Props{"class": productsStyle.Class("region")}
	if a.liveEnabled() {
		region["data-live-view"] = ProductsView
		region[vdom.LiveProp] = ProductsView
	}

	return el.Div(el.Props{"class": productsStyle.Class("page")},
		el.Div(el.Props{"class": "container"},
			components.SectionTitle("Our Catalog", "Products", false),
			el.Div(region, renderCatalog(filter, a.products)),
		),
	), nil
}

// searchDebounce is how long the client waits after a keystroke before
// sending the query, in milliseconds
const searchDebounce = 250

// searchForm is a plain GET form; with scripts it feeds the live view on
// every change
func searchForm(f catalog.Filter) *vdom.VNode {
	return el.Form(el.Props{
		"class":              productsStyle.Class("search"),
		"method":             "get",
		"action":             "/products",
		"role":               "search",
		"data-live-event":    live.EventFilterQuery.String(),
		"data-live-target":   ProductsView,
		"data-live-debounce": searchDebounce,
	},
		components.Icon("search", 18, ""),
		el.Input(el.Props{
			"type":        "search",
			"name":        "q",
			"value":       f.Query,
			"placeholder": "Search parts...",
			"aria-label":  "Search parts",
			"maxlength":   100,
		}),
		el.If(f.Category != catalog.All, el.Input(el.Props{"type": "hidden", "name": "category", "value": string(f.Category)})),
	)
}

// renderCatalog is the live region body: search box and pills, then the
// grid or the empty state. The search box lives here so a reset clears it.
func renderCatalog(f catalog.Filter, products []catalog.Product) *vdom.VNode {
	matches := f.Apply(products)

	categories := append([]catalog.Category{catalog.All}, catalog.Categories...)
	pills := make([]*vdom.VNode, len(categories))
	for i, c := range categories {
		next := catalog.Filter{Category: c, Query: f.Query}
		pills[i] = components.Pill(string(c), productsHref(next), c == f.Category, vdom.Props{
			"data-live-event":     live.EventFilterCategory.String(),
			"data-field-category": string(c),
		})
	}

	var body *vdom.VNode
	if len(matches) == 0 {
		body = el.Div(el.Props{"class": productsStyle.Class("empty")},
			el.P(nil, el.Text("No products found matching your criteria.")),
			components.Button(components.ButtonProps{
				Text:    "Clear filters",
				Href:    "/products",
				Variant: components.ButtonSecondary,
				Attrs:   vdom.Props{"data-live-event": live.EventFilterReset.String()},
			}),
		)
	} else {
		body = el.Fragment(
			el.P(el.Props{"class": productsStyle.Class("count")}, el.Textf("Showing %d of %d products", len(matches), len(products))),
			el.Div(el.Props{"class": productsStyle.Class("grid")}, el.Map(matches, productCard)),
		)
	}

	return el.Fragment(
		el.Div(el.Props{"class": productsStyle.Class("toolbar")},
			searchForm(f),
			el.Div(el.Props{"class": productsStyle.Class("pills"), "role": "group", "aria-label": "Categories"}, pills...),
		),
		body,
	)
}

func productCard(_ int, p catalog.Product) *vdom.VNode {
	media := el.Div(el.Props{"class": productsStyle.Class("media")},
		el.Img(el.Props{"src": p.Image, "alt": p.Name, "loading": "lazy"}),
		el.Span(el.Props{"class": productsStyle.Class("category")}, el.Text(string(p.Category))),
	)
	return components.CardMedia(components.CardProps{
		Title: p.Name,
		Glow:  components.GlowAmber,
		Hover: true,
		Attrs: vdom.Props{"id": p.ID},
	}, media,
		el.P(el.Props{"class": productsStyle.Class("desc")}, el.Text(p.Description)),
		el.Div(el.Props{"class": productsStyle.Class("specs")},
			el.Map(p.Specs, func(_ int, s string) *vdom.VNode { return components.Tag(s) }),
		),
		components.Button(components.ButtonProps{
			Text:    "Get Quote",
			Href:    "/contact",
			Variant: components.ButtonSecondary,
			Size:    components.ButtonSmall,
		}),
	)
}

func productsHref(f catalog.Filter) string {
	v := f.Values()
	if len(v) == 0 {
		return "/products"
	}
	return "/products?" + v.Encode()
}

// productsView keeps one visitor's filter on the server
type productsView struct {
	filter   *reactive.State[catalog.Filter]
	products []catalog.Product
}

func (a *App) newProductsView(sched reactive.Scheduler, params url.Values) live.View {
	return &productsView{
		filter:   reactive.NewState(catalog.ParseFilter(params), sched),
		products: a.products,
	}
}

func (v *productsView) Render() *vdom.VNode {
	return renderCatalog(v.filter.Get(), v.products)
}

func (v *productsView) Sources() []reactive.Source {
	return []reactive.Source{v.filter}
}

func (v *productsView) Handle(_ context.Context, evt live.Event) error {
	switch evt.Type {
	case live.EventFilterCategory:
		c := catalog.Category(evt.Field("category"))
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", c)
		}
		v.filter.Update(func(f catalog.Filter) catalog.Filter {
			f.Category = c
			return f
		})
	case live.EventFilterQuery:
		q := evt.Field("q")
		v.filter.Update(func(f catalog.Filter) catalog.Filter {
			f.Query = catalog.ParseFilter(url.Values{"q": {q}}).Query
			return f
		})
	case live.EventFilterReset:
		v.filter.Set(catalog.Reset())
	default:
		return fmt.Errorf("unsupported event %s", evt.Type)
	}
	return nil
}

// productsResponse is the body of GET /api/products
type productsResponse struct {
	Filter   catalog.Filter    `json:"filter"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

// ProductsAPI lists the products matching ?category=&q=
func (a *App) ProductsAPI(ctx server.Ctx) (any, error) {
	filter := catalog.ParseFilter(ctx.Query())
	matches := filter.Apply(a.products)
	return productsResponse{Filter: filter, Count: len(matches), Products: matches}, nil
}

// ProductAPI returns one product by id
func (a *App) ProductAPI(ctx server.Ctx) (any, error) {
	id := ctx.Param("id")
	for _, p := range a.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, server.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %q not found", id))
}
