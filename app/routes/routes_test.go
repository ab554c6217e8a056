package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/korden-tech/korden/internal/cache"
	"github.com/korden-tech/korden/internal/contact"
	"github.com/korden-tech/korden/pkg/catalog"
	"github.com/korden-tech/korden/pkg/live"
	"github.com/korden-tech/korden/pkg/renderer/html"
	"github.com/korden-tech/korden/pkg/server"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func newTestApp(t *testing.T, delay time.Duration, assets Assets) (*App, *server.Router, *cache.Cache) {
	t.Helper()
	app := New(Options{
		Contact:  contact.NewService(delay),
		Assets:   assets,
		LivePath: "/live",
		Now:      fixedNow,
		Logger:   discard,
	})
	router := server.NewRouter()
	router.SetLogger(discard)
	pages := cache.New(cache.DefaultConfig())
	router.SetCache(pages)
	app.Register(router, live.NewServer(live.Config{}, discard))
	return app, router, pages
}

func do(h http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPages(t *testing.T) {
	_, router, _ := newTestApp(t, time.Millisecond, Assets{})

	tests := []struct {
		path   string
		status int
		want   []string
	}{
		{"/", http.StatusOK, []string{
			"<title>Korden Technologies</title>",
			`data-fx="ripple"`,
			`data-spotlight="150"`,
			"Powering the",
			"The Korden Advantage",
			`data-accordion-item="1" data-active="true"`,
			`href="/?feature=2#features"`,
			`data-scroll-count="4"`,
			"Supply Chain Management",
			"© 2026 KORDEN TECHNOLOGIES.",
		}},
		{"/?feature=3", http.StatusOK, []string{
			`data-accordion-item="3" data-active="true"`,
			`data-accordion-item="1" data-active="false"`,
		}},
		{"/?feature=9", http.StatusOK, []string{`data-accordion-item="1" data-active="true"`}},
		{"/about", http.StatusOK, []string{
			"<title>About | Korden Technologies</title>",
			"we are architecting.",
			"Beyond Distribution",
			"Innovation stalls when",
			"Vision 2030",
			"5M+",
		}},
		{"/services", http.StatusOK, []string{"SYSTEM_CAPABILITIES", "QA Laboratory", "IPC_CLASS_3", `href="/contact"`}},
		{"/products", http.StatusOK, []string{
			`data-live-view="products"`,
			"Showing 30 of 30 products",
			"K-Tech Passive Series 101",
			`placeholder="Search parts..."`,
			`data-live-debounce="250"`,
		}},
		{"/products?category=Sensors", http.StatusOK, []string{"Showing 5 of 30 products", "K-Tech Sensors Series 102"}},
		{"/products?q=no+such+part", http.StatusOK, []string{"No products found matching your criteria.", "Clear filters", `value="no such part"`}},
		{"/contact", http.StatusOK, []string{
			"UPLINK_ESTABLISHED",
			`data-fx="particles"`,
			"https://wa.me/919876543210",
			`href="tel:+919876543210"`,
			"TRANSMIT MESSAGE",
			`data-live-view="contact"`,
		}},
		{"/nowhere", http.StatusNotFound, []string{"Signal Lost", "404"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(router, http.MethodGet, tt.path, nil, "")
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			body := w.Body.String()
			if !strings.HasPrefix(body, "<!DOCTYPE html>") {
				t.Errorf("body is not a document: %.60q", body)
			}
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestLayout_NavAndAssets(t *testing.T) {
	assets := DefaultAssets()
	assets.Wasm = "/static/korden.wasm"
	_, router, _ := newTestApp(t, time.Millisecond, assets)

	body := do(router, http.MethodGet, "/services", nil, "").Body.String()
	for _, want := range []string{
		`aria-current="page"`,
		`data-live-path="/live"`,
		`data-wasm="/static/korden.wasm"`,
		`src="/static/wasm_exec.js"`,
		`id="korden-fx"`,
		`data-nav-toggle`,
		`data-back-to-top`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("layout missing %q", want)
		}
	}
	if strings.Count(body, `aria-current="page"`) != 2 {
		t.Error("the current page should be marked in the desktop and mobile nav only")
	}
}

func TestPageCache(t *testing.T) {
	app, router, pages := newTestApp(t, time.Millisecond, Assets{})

	if got := do(router, http.MethodGet, "/about", nil, "").Header().Get("X-Cache"); got != "MISS" {
		t.Fatalf("first X-Cache = %q", got)
	}
	if got := do(router, http.MethodGet, "/about", nil, "").Header().Get("X-Cache"); got != "HIT" {
		t.Fatalf("second X-Cache = %q", got)
	}

	site := *app.Site()
	site.About.Headline = "Reloaded headline"
	app.SetSite(&site)
	if n := pages.Invalidate(TagContent); n == 0 {
		t.Fatal("content pages were not tagged")
	}

	w := do(router, http.MethodGet, "/about", nil, "")
	if w.Header().Get("X-Cache") != "MISS" || !strings.Contains(w.Body.String(), "Reloaded headline") {
		t.Error("page not re-rendered after invalidation")
	}
}

func TestProductsAPI(t *testing.T) {
	_, router, _ := newTestApp(t, time.Millisecond, Assets{})

	w := do(router, http.MethodGet, "/api/products?category=Sensors", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list productsResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 5 || len(list.Products) != 5 || list.Filter.Category != catalog.Sensors {
		t.Fatalf("response = %+v", list)
	}
	for _, p := range list.Products {
		if p.Category != catalog.Sensors {
			t.Errorf("%s has category %s", p.ID, p.Category)
		}
	}

	w = do(router, http.MethodGet, "/api/products/prod-3", nil, "")
	var p catalog.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil || p.ID != "prod-3" {
		t.Errorf("product = %+v, err %v", p, err)
	}

	if w := do(router, http.MethodGet, "/api/products/prod-999", nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("missing product status = %d", w.Code)
	}
}

func TestContact_PostFallback(t *testing.T) {
	_, router, _ := newTestApp(t, time.Millisecond, Assets{})
	const form = "application/x-www-form-urlencoded"

	ok := url.Values{"name": {"Asha Rao"}, "email": {"asha@example.com"}, "message": {"500 units of K-Tech IoT"}}
	w := do(router, http.MethodPost, "/contact", strings.NewReader(ok.Encode()), form)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Transmission Sent") {
		t.Error("success screen not rendered")
	}
	if w.Header().Get("X-Cache") != "" {
		t.Error("POST response went through the page cache")
	}

	plain := url.Values{"name": {"O'Brien"}, "email": {"tom&jerry@example.com"}, "message": {"Need 5 < 10 units & fast"}}
	w = do(router, http.MethodPost, "/contact", strings.NewReader(plain.Encode()), form)
	if w.Code != http.StatusOK {
		t.Fatalf("plain text status = %d", w.Code)
	}

	bad := url.Values{"name": {"O'Brien"}, "email": {"asha"}, "message": {"5 < 10 & more"}}
	w = do(router, http.MethodPost, "/contact", strings.NewReader(bad.Encode()), form)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`aria-invalid="true"`, "must be a valid email address", `value="O&#39;Brien"`, "5 &lt; 10 &amp; more"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	for _, bad := range []string{"&amp;#39;", "&amp;lt;", "&amp;amp;"} {
		if strings.Contains(body, bad) {
			t.Errorf("body double-escaped: found %q", bad)
		}
	}
}

func TestContactAPI(t *testing.T) {
	_, router, _ := newTestApp(t, time.Millisecond, Assets{})

	w := do(router, http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"Hi"}`), "application/json")
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var receipt contact.Receipt
	if err := json.NewDecoder(w.Body).Decode(&receipt); err != nil || receipt.ID == "" {
		t.Errorf("receipt = %+v, err %v", receipt, err)
	}

	w = do(router, http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Asha"}`), "application/json")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid status = %d", w.Code)
	}
	var rej contactRejection
	if err := json.NewDecoder(w.Body).Decode(&rej); err != nil {
		t.Fatal(err)
	}
	if rej.Fields["email"] != "required" || rej.Fields["message"] != "required" {
		t.Errorf("fields = %v", rej.Fields)
	}

	if w := do(router, http.MethodGet, "/api/contact", nil, ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d", w.Code)
	}
}

func TestProductsView(t *testing.T) {
	app, _, _ := newTestApp(t, time.Millisecond, Assets{})
	v := app.newProductsView(nil, url.Values{"category": {"Sensors"}}).(*productsView)
	ctx := t.Context()

	if got := v.Render().TextContent(); !strings.Contains(got, "Showing 5 of 30") {
		t.Fatalf("initial render: %.80q", got)
	}

	if err := v.Handle(ctx, live.Event{Type: live.EventFilterQuery, Fields: map[string]string{"q": " series 102 "}}); err != nil {
		t.Fatal(err)
	}
	if f := v.filter.Get(); f.Category != catalog.Sensors || f.Query != "series 102" {
		t.Errorf("filter = %+v", f)
	}
	if got := v.Render().TextContent(); !strings.Contains(got, "Showing 1 of 30") {
		t.Errorf("filtered render: %.80q", got)
	}
	markup, err := html.RenderToString(v.Render())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(markup, `name="q"`) || !strings.Contains(markup, `value="series 102"`) {
		t.Errorf("search box missing the query: %.200q", markup)
	}

	if err := v.Handle(ctx, live.Event{Type: live.EventFilterCategory, Fields: map[string]string{"category": "Vacuum Tubes"}}); err == nil {
		t.Error("unknown category accepted")
	}

	if err := v.Handle(ctx, live.Event{Type: live.EventFilterReset}); err != nil {
		t.Fatal(err)
	}
	if !v.filter.Get().IsReset() {
		t.Errorf("filter after reset = %+v", v.filter.Get())
	}
	markup, err = html.RenderToString(v.Render())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(markup, `placeholder="Search parts..."`) || !strings.Contains(markup, `value=""`) || strings.Contains(markup, "series 102") {
		t.Errorf("search box not cleared by reset: %.200q", markup)
	}

	if err := v.Handle(ctx, live.Event{Type: live.EventSubmit}); err == nil {
		t.Error("submit accepted by the products view")
	}
}

// waitFor polls the view state until cond holds
func waitFor(t *testing.T, v *contactView, cond func(contactForm) bool) contactForm {
	t.Helper()
	changed := make(chan struct{}, 1)
	cancel := v.form.OnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer cancel()

	deadline := time.After(2 * time.Second)
	for {
		if f := v.form.Get(); cond(f) {
			return f
		}
		select {
		case <-changed:
		case <-deadline:
			t.Fatalf("state never settled: %+v", v.form.Get())
		}
	}
}

func TestContactView(t *testing.T) {
	app, _, _ := newTestApp(t, 20*time.Millisecond, Assets{})
	v := app.newContactView(nil, nil).(*contactView)
	ctx := t.Context()

	submit := live.Event{Type: live.EventSubmit, Fields: map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "Quote for 2k sensors",
	}}
	if err := v.Handle(ctx, submit); err != nil {
		t.Fatal(err)
	}
	if got := v.form.Get(); got.Status != formSubmitting {
		t.Fatalf("status after submit = %v", got.Status)
	}
	if !strings.Contains(v.Render().TextContent(), "TRANSMITTING...") {
		t.Error("loading label not rendered")
	}
	// a second click while in flight is ignored
	if err := v.Handle(ctx, submit); err != nil {
		t.Fatal(err)
	}

	sent := waitFor(t, v, func(f contactForm) bool { return f.Status == formSent })
	if sent.Receipt.ID == "" {
		t.Error("no receipt")
	}
	if !strings.Contains(v.Render().TextContent(), "Transmission Sent") {
		t.Error("success screen not rendered")
	}

	if err := v.Handle(ctx, live.Event{Type: live.EventReset}); err != nil {
		t.Fatal(err)
	}
	if got := v.form.Get(); got.Status != formIdle || got.Values != (contact.Submission{}) {
		t.Errorf("state after reset = %+v", got)
	}

	bad := live.Event{Type: live.EventSubmit, Fields: map[string]string{"name": "Asha"}}
	if err := v.Handle(ctx, bad); err != nil {
		t.Fatal(err)
	}
	rejected := waitFor(t, v, func(f contactForm) bool { return f.Status == formIdle && len(f.Errors) > 0 })
	if rejected.Errors["email"] != "required" || rejected.Values.Name != "Asha" {
		t.Errorf("rejected state = %+v", rejected)
	}
}

func TestActiveFeature(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"2", 2},
		{"3", 3},
		{"0", 1},
		{"4", 1},
		{"two", 1},
	}
	for _, tt := range tests {
		if got := activeFeature(tt.raw, 3); got != tt.want {
			t.Errorf("activeFeature(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
