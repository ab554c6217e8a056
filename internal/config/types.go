package config

import (
	"time"

	"github.com/korden-tech/korden/pkg/fx"
)

// Config is the top-level site configuration, corresponding to korden.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	FX      fx.Config     `yaml:"fx" koanf:"fx"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Cache   CacheConfig   `yaml:"cache" koanf:"cache"`
	Live    LiveConfig    `yaml:"live" koanf:"live"`
	Export  ExportConfig  `yaml:"export" koanf:"export"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `yaml:"host" koanf:"host"`
	Port            int           `yaml:"port" koanf:"port"`
	Dev             bool          `yaml:"dev" koanf:"dev"`
	CORSOrigins     []string      `yaml:"cors_origins" koanf:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	LogFormat       string        `yaml:"log_format" koanf:"log_format"`
}

// SiteConfig locates content overrides and the built client.
type SiteConfig struct {
	// ContentDir may hold about.md to replace the built-in story.
	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
	// BuildDir holds client.wasm and wasm_exec.js when the client is built.
	BuildDir string `yaml:"build_dir" koanf:"build_dir"`
}

// ContactConfig tunes the simulated form submission.
type ContactConfig struct {
	Delay time.Duration `yaml:"delay" koanf:"delay"`
}

// CacheConfig holds page cache settings.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" koanf:"enabled"`
	MaxSize  int64         `yaml:"max_size" koanf:"max_size"`
	MaxAge   time.Duration `yaml:"max_age" koanf:"max_age"`
	Strategy string        `yaml:"strategy" koanf:"strategy"`
}

// LiveConfig holds websocket settings for live views.
type LiveConfig struct {
	Enabled        bool          `yaml:"enabled" koanf:"enabled"`
	Path           string        `yaml:"path" koanf:"path"`
	AllowedOrigins []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	SendBuffer     int           `yaml:"send_buffer" koanf:"send_buffer"`
	PingInterval   time.Duration `yaml:"ping_interval" koanf:"ping_interval"`
}

// ExportConfig controls static export.
type ExportConfig struct {
	OutDir  string   `yaml:"out_dir" koanf:"out_dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
