package site

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/korden-tech/korden/internal/assets"
)

// Document is one page written by an export
type Document struct {
	Route  string
	File   string // slash separated, relative to the output dir
	Status int
}

// NotFoundRoute is rendered to 404.html; it matches no page.
const NotFoundRoute = "/404"

// Documents lists every page an export writes: the static GET pages from
// the route table and the not-found page.
func (s *Site) Documents() []Document {
	var docs []Document
	for _, r := range s.router.ExportTable().Routes {
		if r.Kind != "page" || !r.Static() {
			continue
		}
		if len(r.Methods) > 0 && !slices.Contains(r.Methods, http.MethodGet) {
			continue
		}
		docs = append(docs, Document{Route: r.Path, File: documentFile(r.Path), Status: http.StatusOK})
	}
	return append(docs, Document{Route: NotFoundRoute, File: "404.html", Status: http.StatusNotFound})
}

// documentFile maps /about to about/index.html so links work from a plain
// file server.
func documentFile(route string) string {
	if route == "/" {
		return "index.html"
	}
	return path.Join(route[1:], "index.html")
}

// Render writes doc under dir
func (s *Site) Render(dir string, doc Document) error {
	req := httptest.NewRequest(http.MethodGet, doc.Route, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if rec.Code != doc.Status {
		return fmt.Errorf("render %s: status %d, want %d", doc.Route, rec.Code, doc.Status)
	}

	out := filepath.Join(dir, filepath.FromSlash(doc.File))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(out, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", doc.File, err)
	}
	return nil
}

// Asset is a static file selected for export
type Asset struct {
	Name string // path under /static/
	fsys fs.FS
}

// Assets lists the embedded files and client build outputs matching the
// export include patterns and none of the exclude patterns.
func (s *Site) Assets() ([]Asset, error) {
	var list []Asset
	for _, name := range assets.Names() {
		list = append(list, Asset{Name: name, fsys: assets.FS()})
	}
	if s.cfg.Site.BuildDir != "" {
		build := os.DirFS(s.cfg.Site.BuildDir)
		for _, name := range []string{assets.WasmFile, assets.WasmExecFile} {
			if _, err := fs.Stat(build, name); err == nil {
				list = append(list, Asset{Name: name, fsys: build})
			}
		}
	}

	var selected []Asset
	for _, a := range list {
		ok, err := matchAny(s.cfg.Export.Include, a.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		skip, err := matchAny(s.cfg.Export.Exclude, a.Name)
		if err != nil {
			return nil, err
		}
		if !skip {
			selected = append(selected, a)
		}
	}
	return selected, nil
}

func matchAny(patterns []string, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Copy writes the asset to dir/static
func (a Asset) Copy(dir string) error {
	data, err := fs.ReadFile(a.fsys, a.Name)
	if err != nil {
		return err
	}
	out := filepath.Join(dir, "static", filepath.FromSlash(a.Name))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
