// Package routes builds the site's pages and registers them with the
// router and the live server.
package routes

import (
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/korden-tech/korden/internal/contact"
	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/catalog"
	"github.com/korden-tech/korden/pkg/fx"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/server"
)

// Cache tags. Pages rendered from the copy are dropped when it reloads.
const (
	TagContent = "content"
	TagCatalog = "catalog"
)

// Assets are the URLs the document shell links to
type Assets struct {
	Stylesheet string
	Boot       string
	WasmExec   string
	Wasm       string // empty when the client is not built
}

// DefaultAssets are the paths the asset handler serves
func DefaultAssets() Assets {
	return Assets{
		Stylesheet: "/static/site.css",
		Boot:       "/static/boot.js",
		WasmExec:   "/static/wasm_exec.js",
	}
}

// Options configure an App
type Options struct {
	Site     *content.Site
	Products []catalog.Product
	Contact  *contact.Service
	FX       fx.Config
	Assets   Assets
	LivePath string // websocket mount point, empty disables live views
	Now      func() time.Time
	Logger   *slog.Logger
}

// App renders the site
type App struct {
	site     atomic.Pointer[content.Site]
	products []catalog.Product
	contact  *contact.Service
	fxJSON   string
	assets   Assets
	livePath string
	now      func() time.Time
	logger   *slog.Logger
}

// New creates an App. Missing options fall back to the built-in copy,
// the default catalog and a contact service with the default delay.
func New(opts Options) *App {
	if opts.Site == nil {
		opts.Site = content.MustLoad()
	}
	if opts.Products == nil {
		opts.Products = catalog.Default()
	}
	if opts.Contact == nil {
		opts.Contact = contact.NewService(contact.DefaultDelay)
	}
	if opts.Assets == (Assets{}) {
		opts.Assets = DefaultAssets()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	fxJSON, err := json.Marshal(opts.FX)
	if err != nil {
		// fx.Config is plain numbers; this cannot happen
		panic(err)
	}

	a := &App{
		products: opts.Products,
		contact:  opts.Contact,
		fxJSON:   string(fxJSON),
		assets:   opts.Assets,
		livePath: opts.LivePath,
		now:      opts.Now,
		logger:   opts.Logger.With("component", "routes"),
	}
	a.site.Store(opts.Site)
	return a
}

// Site returns the current copy
func (a *App) Site() *content.Site {
	return a.site.Load()
}

// SetSite swaps the copy, e.g. after the content directory changed.
// Callers should invalidate TagContent in the page cache.
func (a *App) SetSite(s *content.Site) {
	a.site.Store(s)
}

// Products returns the catalog the pages filter
func (a *App) Products() []catalog.Product {
	return a.products
}

// Register adds every page and API route to r and the live views to lv.
// lv may be nil when live views are disabled.
func (a *App) Register(r *server.Router, lv *live.Server) {
	r.Layouts().Use("/", a.Layout)
	r.SetNotFound(a.NotFound)
	r.SetErrorPage(a.ErrorPage)

	r.AddRoute("/", a.Home).Named("home").Cache(TagContent)
	r.AddRoute("/about", a.About).Named("about").Cache(TagContent)
	r.AddRoute("/services", a.Services).Named("services").Cache(TagContent)
	r.AddRoute("/products", a.ProductsPage).Named("products").Cache(TagContent, TagCatalog)
	r.AddRoute("/contact", a.Contact).Named("contact").Methods("GET", "POST").Cache(TagContent)

	r.AddAPIRoute("/api/products", a.ProductsAPI).Named("api-products")
	r.AddAPIRoute("/api/products/[id]", a.ProductAPI).Named("api-product")
	r.AddAPIRoute("/api/contact", a.ContactAPI).Named("api-contact").Methods("POST")

	if lv != nil && a.livePath != "" {
		lv.Register(ProductsView, a.newProductsView)
		lv.Register(ContactView, a.newContactView)
	}
}

func (a *App) liveEnabled() bool {
	return a.livePath != ""
}
