// Package assets embeds the stylesheet and boot script and serves them,
// together with the optional wasm client build, under /static/.
package assets

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed static
var embedded embed.FS

// Client build outputs looked up in the build directory
const (
	WasmFile     = "client.wasm"
	WasmExecFile = "wasm_exec.js"
)

var (
	// SiteCSS is the global stylesheet
	SiteCSS = mustRead("static/site.css")
	// BootJS runs before (and without) the wasm client
	BootJS = mustRead("static/boot.js")
)

func mustRead(name string) []byte {
	data, err := embedded.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// FS returns the embedded files rooted at static/
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Names lists the embedded files, slash separated and sorted
func Names() []string {
	var names []string
	fs.WalkDir(FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			names = append(names, p)
		}
		return err
	})
	sort.Strings(names)
	return names
}

// Handler serves embedded files and the client build. Mount it with
// http.StripPrefix("/static", ...).
type Handler struct {
	static   fs.FS
	buildDir string
	dev      bool
}

// NewHandler serves the client build from buildDir. In dev mode nothing is
// cached by the browser.
func NewHandler(buildDir string, dev bool) *Handler {
	return &Handler{static: FS(), buildDir: buildDir, dev: dev}
}

// HasWasm reports whether the client has been built
func (h *Handler) HasWasm() bool {
	if h.buildDir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(h.buildDir, WasmFile))
	return err == nil && !info.IsDir()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if !fs.ValidPath(name) || name == "." {
		http.NotFound(w, r)
		return
	}

	switch name {
	case WasmFile, WasmExecFile:
		if h.buildDir == "" {
			http.NotFound(w, r)
			return
		}
		if name == WasmFile {
			w.Header().Set("Content-Type", "application/wasm")
		} else {
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		}
		w.Header().Set("Cache-Control", "no-cache")
		h.serve(w, r, os.DirFS(h.buildDir), name)
		return
	}

	switch path.Ext(name) {
	case ".css":
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	}
	if h.dev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	h.serve(w, r, h.static, name)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string) {
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		w.Header().Del("Cache-Control")
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, fsys, name)
}
