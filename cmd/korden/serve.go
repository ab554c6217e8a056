package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/internal/site"
)

func newServeCommand(configPath *string) *cobra.Command {
	var host string
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `Serves the site. With --dev the config file and content directory are
watched and the site is rebuilt when they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("dev") {
				cfg.Server.Dev = dev
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, *configPath)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Watch config and content, disable browser caching")

	return cmd
}

// swapHandler lets the dev watcher replace the whole site while serving
type swapHandler struct {
	current atomic.Pointer[site.Site]
	handler atomic.Pointer[http.Handler]
}

func (h *swapHandler) set(s *site.Site) *site.Site {
	handler := s.Handler()
	h.handler.Store(&handler)
	return h.current.Swap(s)
}

func (h *swapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	(*h.handler.Load()).ServeHTTP(w, r)
}

func runServe(ctx context.Context, cfg *config.Config, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cfg.Server, nil)
	slog.SetDefault(logger)

	s, err := site.New(cfg, logger)
	if err != nil {
		return err
	}
	handler := &swapHandler{}
	handler.set(s)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	if cfg.Server.Dev {
		w, err := newWatcher(configPath, cfg, handler, logger)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Korden running at http://%s", srv.Addr)
		if cfg.Server.Dev {
			log.Println("👀 Watching for changes...")
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}

	log.Println("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if lv := handler.current.Load().Live(); lv != nil {
		if err := lv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("live sessions did not close", "err", err)
		}
	}
	err = srv.Shutdown(shutdownCtx)
	wg.Wait()
	return err
}
