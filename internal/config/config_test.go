package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/korden-tech/korden/internal/cache"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Server.Addr() != "localhost:8080" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
	if cfg.Contact.Delay != 1500*time.Millisecond {
		t.Errorf("contact delay = %v", cfg.Contact.Delay)
	}
	if cfg.FX.Ripple.Spacing != 40 || cfg.FX.Particles.Count != 60 {
		t.Errorf("fx defaults = %+v", cfg.FX)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korden.yaml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Server.CORSOrigins = []string{"https://korden.tech"}
	original.Contact.Delay = 250 * time.Millisecond
	original.Cache.Strategy = "lfu"
	original.FX.Particles.Count = 12
	original.Export.Exclude = []string{"**/*.map"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d", loaded.Server.Port)
	}
	if len(loaded.Server.CORSOrigins) != 1 || loaded.Server.CORSOrigins[0] != "https://korden.tech" {
		t.Errorf("cors_origins: got %v", loaded.Server.CORSOrigins)
	}
	if loaded.Contact.Delay != 250*time.Millisecond {
		t.Errorf("delay: got %v", loaded.Contact.Delay)
	}
	if loaded.FX.Particles.Count != 12 {
		t.Errorf("particles: got %d", loaded.FX.Particles.Count)
	}
	if got := loaded.Cache.Options(); got.Strategy != cache.LFU {
		t.Errorf("strategy: got %v", got.Strategy)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korden.yaml")
	yaml := "server:\n  port: 3000\ncache:\n  max_age: 90s\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 3000 || cfg.Cache.MaxAge != 90*time.Second {
		t.Errorf("overrides not applied: %+v %+v", cfg.Server, cfg.Cache)
	}
	if cfg.Server.Host != "localhost" || cfg.Live.Path != "/live" {
		t.Errorf("defaults lost: %+v %+v", cfg.Server, cfg.Live)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Errorf("port = %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KORDEN_SERVER__PORT", "7070")
	t.Setenv("KORDEN_SERVER__DEV", "true")
	t.Setenv("KORDEN_CONTACT__DELAY", "2s")

	cfg, err := Load(filepath.Join(t.TempDir(), "korden.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 7070 || !cfg.Server.Dev {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Contact.Delay != 2*time.Second {
		t.Errorf("delay = %v", cfg.Contact.Delay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }},
		{"log level", func(c *Config) { c.Server.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.Server.LogFormat = "xml" }},
		{"delay", func(c *Config) { c.Contact.Delay = -time.Second }},
		{"strategy", func(c *Config) { c.Cache.Strategy = "random" }},
		{"live path", func(c *Config) { c.Live.Path = "live" }},
		{"spacing", func(c *Config) { c.FX.Ripple.Spacing = 0 }},
		{"out dir", func(c *Config) { c.Export.OutDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"KORDEN_SERVER__PORT":        "server.port",
		"KORDEN_CACHE__MAX_AGE":      "cache.max_age",
		"KORDEN_FX__RIPPLE__SPACING": "fx.ripple.spacing",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
