package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/korden-tech/korden/internal/config"
)

// newLogger builds the server logger from the configured level and format
func newLogger(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
