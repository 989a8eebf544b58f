package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	Site    SiteConfig
	Render  RenderConfig
	Metrics MetricsConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig describes where content comes from and how pages link out.
type SiteConfig struct {
	// ContentPath points at a YAML content file; empty uses the embedded sample content
	ContentPath string `env:"CONTENT_PATH" envDefault:""`
	// BaseURL is the public origin used for canonical and OpenGraph URLs
	BaseURL string `env:"SITE_BASE_URL" envDefault:"https://innermost.com"`
	// TailwindCDN is the Tailwind runtime script that resolves utility classes in the browser
	TailwindCDN string `env:"TAILWIND_CDN" envDefault:"https://cdn.tailwindcss.com"`
}

// RenderConfig controls the rendered-page cache
type RenderConfig struct {
	// CacheSize is the number of rendered pages kept in memory (0 disables caching)
	CacheSize int `env:"RENDER_CACHE_SIZE" envDefault:"64"`
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerAddress, strconv.Itoa(c.ServerPort))
}

// Validate reports settings that cannot produce a working server
func (c *Config) Validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT %d out of range", c.ServerPort)
	}
	if c.Render.CacheSize < 0 {
		return fmt.Errorf("RENDER_CACHE_SIZE must not be negative, got %d", c.Render.CacheSize)
	}
	return nil
}

// LoadEnvFiles loads .env then .env.local; later files override earlier ones.
// Missing files are ignored.
func LoadEnvFiles(dir string) {
	_ = godotenv.Load(dir + "/.env")
	_ = godotenv.Overload(dir + "/.env.local")
}

// Parse reads configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.String("content_path", cfg.Site.ContentPath),
		slog.Int("render_cache_size", cfg.Render.CacheSize),
	)

	return cfg, nil
}
