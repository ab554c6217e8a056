package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/internal/site"
	"github.com/korden-tech/korden/pkg/catalog"
)

func TestPrintCatalog(t *testing.T) {
	products := catalog.Default()
	sensors := catalog.Filter{Category: catalog.Sensors}
	want := len(sensors.Apply(products))

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printCatalog(&buf, sensors, products, "json"); err != nil {
			t.Fatal(err)
		}
		var got catalogResult
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got.Count != want || len(got.Products) != want {
			t.Errorf("count = %d (%d products), want %d", got.Count, len(got.Products), want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printCatalog(&buf, sensors, products, "yaml"); err != nil {
			t.Fatal(err)
		}
		var got catalogResult
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got.Count != want {
			t.Errorf("count = %d, want %d", got.Count, want)
		}
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printCatalog(&buf, sensors, products, "table"); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "CATEGORY") || !strings.Contains(out, "Sensors") {
			t.Errorf("table output missing header or rows:\n%s", out)
		}
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		none := catalog.Filter{Category: catalog.All, Query: "flux capacitor"}
		if err := printCatalog(&buf, none, products, "table"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "No products found") {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("bad format", func(t *testing.T) {
		if err := printCatalog(io.Discard, sensors, products, "xml"); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.ServerConfig{LogLevel: "warn", LogFormat: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &rec); err != nil {
		t.Fatalf("not json: %q", out)
	}
	if rec["msg"] != "shown" || rec["k"] != "v" {
		t.Errorf("record = %v", rec)
	}
}

func TestSwapHandler(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.DefaultConfig()
	cfg.Site.ContentDir = t.TempDir()

	first, err := site.New(cfg, discard)
	if err != nil {
		t.Fatal(err)
	}
	second, err := site.New(cfg, discard)
	if err != nil {
		t.Fatal(err)
	}

	h := &swapHandler{}
	if old := h.set(first); old != nil {
		t.Error("first set should return nil")
	}
	if old := h.set(second); old != first {
		t.Error("set should return the replaced site")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestWatcherClassify(t *testing.T) {
	dir := t.TempDir()
	w := &watcher{
		configPath: filepath.Join(dir, "korden.yaml"),
		contentDir: filepath.Join(dir, "content"),
	}

	tests := []struct {
		name string
		want change
	}{
		{filepath.Join(dir, "korden.yaml"), changeConfig},
		{filepath.Join(dir, "content", "about.md"), changeContent},
		{filepath.Join(dir, "content", "drafts", "story.md"), changeContent},
		{filepath.Join(dir, "content", "notes.txt"), changeNone},
		{filepath.Join(dir, "other.md"), changeNone},
		{filepath.Join(dir, "korden.yaml.swp"), changeNone},
	}
	for _, tt := range tests {
		if got := w.classify(tt.name); got != tt.want {
			t.Errorf("classify(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "korden "+version) {
		t.Errorf("got %q", buf.String())
	}
}

func TestRoutesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korden.yaml")
	cmd := newRoutesCommand(&path)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"path": "/products"`, `"path": "/api/products/[id]"`, `"kind": "api"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("route table missing %s", want)
		}
	}
}
