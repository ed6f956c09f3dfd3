// Package config loads pdfpeek settings from environment variables.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the runtime configuration for the picker and previewer.
type Config struct {
	RasterizerPath string `env:"PDFPEEK_PDFTOPPM" env-default:"" env-description:"Explicit path to the pdftoppm binary (defaults to PATH lookup)"`
	InfoToolPath   string `env:"PDFPEEK_PDFINFO" env-default:"" env-description:"Explicit path to the pdfinfo binary (defaults to PATH lookup)"`
	ScaleWidth     int    `env:"PDFPEEK_SCALE_WIDTH" env-default:"800" env-description:"Horizontal pixel target for rendered thumbnails"`
	RenderTimeout  string `env:"PDFPEEK_RENDER_TIMEOUT" env-default:"10s" env-description:"Bounded wait for the rasterizer (e.g. 10s, 1m); 0 disables"`
	CachePath      string `env:"PDFPEEK_CACHE_PATH" env-default:"" env-description:"Thumbnail cache directory (defaults to the user cache dir)"`
	CacheTTL       string `env:"PDFPEEK_CACHE_TTL" env-default:"24h" env-description:"TTL for cached thumbnails (e.g. 24h, 1h30m)"`
	CacheDisabled  bool   `env:"PDFPEEK_NO_CACHE" env-default:"false" env-description:"Disable the thumbnail cache"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseRenderTimeout returns the configured rasterizer wait, or the given
// fallback when the value does not parse.
func (c Config) ParseRenderTimeout(fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(c.RenderTimeout)
	if err != nil {
		return fallback
	}
	return d
}

// ParseCacheTTL returns the configured thumbnail TTL, or the given fallback
// when the value does not parse.
func (c Config) ParseCacheTTL(fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return fallback
	}
	return d
}

// WithScaleWidth sets the thumbnail scale target.
func (c Config) WithScaleWidth(width int) Config {
	c.ScaleWidth = width
	return c
}

// WithCacheDisabled enables or disables the thumbnail cache.
func (c Config) WithCacheDisabled(disabled bool) Config {
	c.CacheDisabled = disabled
	return c
}
