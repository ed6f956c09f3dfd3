package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/krivenkov/pdfpeek/internal/cache"
	"github.com/krivenkov/pdfpeek/internal/config"
	"github.com/krivenkov/pdfpeek/internal/preview"
	"github.com/krivenkov/pdfpeek/internal/scratch"
)

// buildOrchestrator assembles a previewer against the real environment from
// environment configuration.
func buildOrchestrator(logger *slog.Logger) (*preview.Orchestrator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fs := scratch.NewOSFileSystem()

	var thumbs *cache.Manager
	if !cfg.CacheDisabled {
		thumbs, err = cache.NewManager(cache.Config{
			BasePath:   cfg.CachePath,
			DefaultTTL: cfg.ParseCacheTTL(24 * time.Hour),
			Logger:     logger,
			FileSystem: fs,
		})
		if err != nil {
			// A broken cache never blocks previewing.
			logger.Warn("thumbnail cache disabled", "error", err)
			thumbs = nil
		}
	}

	return preview.New(preview.Options{
		FileSystem:    fs,
		Scratch:       scratch.NewManager(fs, "", logger),
		Thumbnails:    thumbs,
		Logger:        logger,
		Rasterizer:    cfg.RasterizerPath,
		InfoTool:      cfg.InfoToolPath,
		ScaleWidth:    cfg.ScaleWidth,
		RenderTimeout: cfg.ParseRenderTimeout(10 * time.Second),
	}), nil
}
