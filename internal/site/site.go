// Package site assembles the configured application: content, routes, page
// cache, live server and static assets behind one chi mux.
package site

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/korden-tech/korden/app/routes"
	"github.com/korden-tech/korden/internal/assets"
	"github.com/korden-tech/korden/internal/cache"
	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/internal/contact"
	"github.com/korden-tech/korden/internal/content"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/server"
)

// Site is a running configuration of the application
type Site struct {
	cfg    *config.Config
	app    *routes.App
	router *server.Router
	pages  *cache.Cache // nil when caching is off
	live   *live.Server // nil when live views are off
	static *assets.Handler
	logger *slog.Logger
}

// New builds the site described by cfg
func New(cfg *config.Config, logger *slog.Logger) (*Site, error) {
	if logger == nil {
		logger = slog.Default()
	}
	texts, err := content.Load(cfg.Site.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	static := assets.NewHandler(cfg.Site.BuildDir, cfg.Server.Dev)
	urls := routes.DefaultAssets()
	if static.HasWasm() {
		urls.Wasm = "/static/" + assets.WasmFile
	}

	opts := routes.Options{
		Site:    texts,
		Contact: contact.NewService(cfg.Contact.Delay),
		FX:      cfg.FX,
		Assets:  urls,
		Logger:  logger,
	}

	s := &Site{cfg: cfg, static: static, logger: logger}
	if cfg.Live.Enabled {
		opts.LivePath = cfg.Live.Path
		s.live = live.NewServer(cfg.Live.Options(), logger)
	}
	s.app = routes.New(opts)

	s.router = server.NewRouter()
	s.router.SetLogger(logger)
	if cfg.Cache.Enabled {
		s.pages = cache.New(cfg.Cache.Options())
		s.router.SetCache(s.pages)
	}
	s.app.Register(s.router, s.live)
	return s, nil
}

// App returns the page renderer
func (s *Site) App() *routes.App { return s.app }

// Router returns the page router
func (s *Site) Router() *server.Router { return s.router }

// Pages returns the page cache, or nil when caching is off
func (s *Site) Pages() *cache.Cache { return s.pages }

// Live returns the live server, or nil when live views are off
func (s *Site) Live() *live.Server { return s.live }

// Handler returns the full HTTP surface
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/static/*", http.StripPrefix("/static", s.static))

	api := cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
	r.With(api).Handle("/api/*", s.router)

	if s.live != nil {
		prefix := strings.TrimSuffix(s.cfg.Live.Path, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, s.live))
	}

	r.Handle("/*", s.router)
	return r
}

// Reload re-reads the content directory and drops every page rendered from
// the old copy.
func (s *Site) Reload() error {
	texts, err := content.Load(s.cfg.Site.ContentDir)
	if err != nil {
		return fmt.Errorf("reload content: %w", err)
	}
	s.app.SetSite(texts)
	if s.pages != nil {
		n := s.pages.Invalidate(routes.TagContent)
		s.logger.Info("content reloaded", "invalidated", n)
	}
	return nil
}
