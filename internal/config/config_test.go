package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.ScaleWidth)
	assert.Equal(t, 10*time.Second, cfg.ParseRenderTimeout(time.Minute))
	assert.Equal(t, 24*time.Hour, cfg.ParseCacheTTL(time.Minute))
	assert.False(t, cfg.CacheDisabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PDFPEEK_PDFTOPPM", "/opt/poppler/bin/pdftoppm")
	t.Setenv("PDFPEEK_SCALE_WIDTH", "1200")
	t.Setenv("PDFPEEK_RENDER_TIMEOUT", "30s")
	t.Setenv("PDFPEEK_NO_CACHE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/opt/poppler/bin/pdftoppm", cfg.RasterizerPath)
	assert.Equal(t, 1200, cfg.ScaleWidth)
	assert.Equal(t, 30*time.Second, cfg.ParseRenderTimeout(time.Minute))
	assert.True(t, cfg.CacheDisabled)
}

func TestParseDurations_FallBackOnGarbage(t *testing.T) {
	cfg := Config{RenderTimeout: "soon", CacheTTL: "later"}

	assert.Equal(t, 10*time.Second, cfg.ParseRenderTimeout(10*time.Second))
	assert.Equal(t, 24*time.Hour, cfg.ParseCacheTTL(24*time.Hour))
}

func TestConfigBuilders(t *testing.T) {
	cfg := Config{}.WithScaleWidth(640).WithCacheDisabled(true)

	assert.Equal(t, 640, cfg.ScaleWidth)
	assert.True(t, cfg.CacheDisabled)
}
