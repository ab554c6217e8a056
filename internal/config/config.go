// Package config loads korden.yaml with KORDEN_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/korden-tech/korden/internal/cache"
	"github.com/korden-tech/korden/internal/contact"
	"github.com/korden-tech/korden/pkg/fx"
	"github.com/korden-tech/korden/pkg/live"
)

// DefaultPath is where commands look for the config file
const DefaultPath = "korden.yaml"

// EnvPrefix marks environment overrides. Nested keys use a double
// underscore: KORDEN_SERVER__PORT=9000 sets server.port.
const EnvPrefix = "KORDEN_"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// DefaultExcludes are asset patterns never copied by export
var DefaultExcludes = []string{
	"**/.*",
	"**/*.map",
	"**/*_test.*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
			LogLevel:        "info",
			LogFormat:       "text",
		},
		Site: SiteConfig{
			ContentDir: "content",
			BuildDir:   "build",
		},
		FX: fx.DefaultConfig(),
		Contact: ContactConfig{
			Delay: contact.DefaultDelay,
		},
		Cache: CacheConfig{
			Enabled:  true,
			MaxSize:  32 << 20,
			MaxAge:   10 * time.Minute,
			Strategy: "lru",
		},
		Live: LiveConfig{
			Enabled:      true,
			Path:         "/live",
			SendBuffer:   64,
			PingInterval: 54 * time.Second,
		},
		Export: ExportConfig{
			OutDir:  "dist",
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envKey maps KORDEN_CACHE__MAX_AGE to cache.max_age
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalid, c.Server.Port)
	}
	if _, ok := validLevels[strings.ToLower(c.Server.LogLevel)]; !ok {
		return fmt.Errorf("%w: server.log_level %q: must be one of debug, info, warn, error", ErrInvalid, c.Server.LogLevel)
	}
	if f := c.Server.LogFormat; f != "text" && f != "json" {
		return fmt.Errorf("%w: server.log_format %q: must be text or json", ErrInvalid, f)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be non-negative", ErrInvalid)
	}

	if c.Contact.Delay < 0 {
		return fmt.Errorf("%w: contact.delay must be non-negative", ErrInvalid)
	}

	if _, ok := cache.ParseStrategy(c.Cache.Strategy); !ok {
		return fmt.Errorf("%w: cache.strategy %q: must be one of lru, lfu, fifo", ErrInvalid, c.Cache.Strategy)
	}
	if c.Cache.MaxSize < 0 || c.Cache.MaxAge < 0 {
		return fmt.Errorf("%w: cache limits must be non-negative", ErrInvalid)
	}

	if c.Live.Enabled && !strings.HasPrefix(c.Live.Path, "/") {
		return fmt.Errorf("%w: live.path %q must start with /", ErrInvalid, c.Live.Path)
	}
	if c.Live.SendBuffer < 0 {
		return fmt.Errorf("%w: live.send_buffer must be non-negative", ErrInvalid)
	}

	if c.FX.Ripple.Spacing <= 0 || c.FX.Elastic.Spacing <= 0 {
		return fmt.Errorf("%w: fx grid spacing must be positive", ErrInvalid)
	}
	if c.FX.Particles.Count < 0 {
		return fmt.Errorf("%w: fx.particles.count must be non-negative", ErrInvalid)
	}

	if c.Export.OutDir == "" {
		return fmt.Errorf("%w: export.out_dir is required", ErrInvalid)
	}
	return nil
}

// Addr is the listen address
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Level returns the slog level, defaulting to info
func (c ServerConfig) Level() slog.Level {
	if l, ok := validLevels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}

// Options converts to page cache options
func (c CacheConfig) Options() cache.Config {
	strategy, _ := cache.ParseStrategy(c.Strategy)
	return cache.Config{MaxSize: c.MaxSize, MaxAge: c.MaxAge, Strategy: strategy}
}

// Options converts to live server options; zero fields take the server defaults
func (c LiveConfig) Options() live.Config {
	return live.Config{
		AllowedOrigins: c.AllowedOrigins,
		SendBuffer:     c.SendBuffer,
		PingInterval:   c.PingInterval,
	}
}
