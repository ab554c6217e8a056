package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/internal/site"
)

// contentPatterns select the content files that trigger a reload
var contentPatterns = []string{"*.md", "**/*.md"}

// watcher rebuilds the site when korden.yaml changes and reloads the copy
// when the content directory changes.
type watcher struct {
	fs         *fsnotify.Watcher
	configPath string
	contentDir string
	running    *config.Config
	handler    *swapHandler
	logger     *slog.Logger
}

func newWatcher(configPath string, cfg *config.Config, handler *swapHandler, logger *slog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		fs:         fsw,
		configPath: filepath.Clean(configPath),
		contentDir: filepath.Clean(cfg.Site.ContentDir),
		running:    cfg,
		handler:    handler,
		logger:     logger,
	}

	// Editors often replace files, so watch directories rather than files
	if err := fsw.Add(filepath.Dir(w.configPath)); err != nil {
		fsw.Close()
		return nil, err
	}
	if info, err := os.Stat(w.contentDir); err == nil && info.IsDir() {
		if err := fsw.Add(w.contentDir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// change classifies a filesystem event
type change int

const (
	changeNone change = iota
	changeContent
	changeConfig
)

func (w *watcher) classify(name string) change {
	name = filepath.Clean(name)
	if name == w.configPath {
		return changeConfig
	}
	rel, err := filepath.Rel(w.contentDir, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return changeNone
	}
	for _, p := range contentPatterns {
		if ok, _ := doublestar.Match(p, filepath.ToSlash(rel)); ok {
			return changeContent
		}
	}
	return changeNone
}

func (w *watcher) run(ctx context.Context) {
	defer w.fs.Close()

	debounce := time.NewTimer(0)
	<-debounce.C

	pending := changeNone
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if c := w.classify(event.Name); c != changeNone {
				pending = max(pending, c)
				debounce.Reset(100 * time.Millisecond)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			switch pending {
			case changeConfig:
				w.reloadConfig()
			case changeContent:
				w.reloadContent()
			}
			pending = changeNone
		}
	}
}

func (w *watcher) reloadContent() {
	log.Println("📝 Content changed, reloading...")
	if err := w.handler.current.Load().Reload(); err != nil {
		log.Printf("❌ Reload failed: %v", err)
		return
	}
	log.Println("✅ Content reloaded")
}

// reloadConfig rebuilds the site from the new file. Listener settings
// cannot change without a restart and are kept.
func (w *watcher) reloadConfig() {
	log.Println("⚙️  Config changed, rebuilding site...")
	cfg, err := config.Load(w.configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Printf("❌ Keeping previous config: %v", err)
		return
	}

	if cfg.Server.Addr() != w.running.Server.Addr() {
		log.Printf("⚠️  Listen address changes need a restart (still on %s)", w.running.Server.Addr())
	}
	cfg.Server.Host = w.running.Server.Host
	cfg.Server.Port = w.running.Server.Port
	cfg.Server.Dev = true
	if filepath.Clean(cfg.Site.ContentDir) != w.contentDir {
		log.Printf("⚠️  Content directory changes need a restart (still watching %s)", w.contentDir)
	}

	next, err := site.New(cfg, w.logger)
	if err != nil {
		log.Printf("❌ Keeping previous site: %v", err)
		return
	}
	old := w.handler.set(next)
	w.running = cfg

	if lv := old.Live(); lv != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			lv.Shutdown(ctx)
		}()
	}
	log.Println("✅ Site rebuilt")
}
