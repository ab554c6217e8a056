//go:build js && wasm

// Package debug routes client logs to the browser console.
package debug

import (
	"bytes"
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/korden-tech/korden/pkg/reactive"
	"github.com/korden-tech/korden/pkg/scheduler"
)

// Console is an io.Writer that sends each write to console.log, or to
// console.warn/console.error for records at those levels.
type Console struct{}

func (Console) Write(p []byte) (int, error) {
	method := "log"
	switch {
	case bytes.Contains(p, []byte("level=ERROR")):
		method = "error"
	case bytes.Contains(p, []byte("level=WARN")):
		method = "warn"
	}
	js.Global().Get("console").Call(method, string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

// NewLogger returns a text logger writing to the console. Timestamps are
// dropped; the console adds its own.
func NewLogger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(Console{}, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// EnableLogging sends scheduler and reactive tracing to logger at debug level
func EnableLogging(logger *slog.Logger) {
	logFn := func(args ...any) {
		logger.Debug(fmt.Sprint(args...))
	}

	scheduler.SetDebugLog(logFn)
	reactive.SetDebugLog(logFn)
}
