// Package cache stores rendered PDF thumbnails so repeated previews of an
// unchanged document skip the rasterizer. Entries are keyed by a content
// fingerprint and expire after a TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/krivenkov/pdfpeek/internal/scratch"
)

// Error represents a cache-related failure.
type Error struct {
	Operation string
	Path      string
	Err       error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cache error during %s", e.Operation)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds configuration for the thumbnail cache.
type Config struct {
	BasePath   string
	DefaultTTL time.Duration
	Logger     *slog.Logger       // Optional: defaults to discard
	FileSystem scratch.FileSystem // Optional: defaults to the OS filesystem
}

// Manager handles thumbnail storage with fingerprint-based naming.
type Manager struct {
	basePath   string
	defaultTTL time.Duration
	logger     *slog.Logger
	fs         scratch.FileSystem
}

// NewManager creates a thumbnail cache rooted at config.BasePath.
func NewManager(config Config) (*Manager, error) {
	ctx := context.Background()

	if config.BasePath == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		config.BasePath = filepath.Join(base, "pdfpeek")
	}
	if config.DefaultTTL == 0 {
		config.DefaultTTL = 24 * time.Hour
	}
	if config.FileSystem == nil {
		config.FileSystem = scratch.NewOSFileSystem()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := config.FileSystem.MkdirAll(config.BasePath, 0o755); err != nil {
		config.Logger.ErrorContext(ctx, "failed to create cache directory",
			"error", err,
			"path", config.BasePath,
		)
		return nil, &Error{
			Operation: "init - create directory",
			Path:      config.BasePath,
			Err:       err,
		}
	}

	config.Logger.DebugContext(ctx, "thumbnail cache initialized",
		"base_path", config.BasePath,
		"default_ttl", config.DefaultTTL,
	)

	return &Manager{
		basePath:   config.BasePath,
		defaultTTL: config.DefaultTTL,
		logger:     config.Logger,
		fs:         config.FileSystem,
	}, nil
}

// Key computes a fingerprint for a document from its path, size and mtime.
// Any change to the file invalidates its cached thumbnail.
func Key(path string, size int64, modTime time.Time) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%d", path, size, modTime.UnixNano()))
	return fmt.Sprintf("%x", hash)
}

func (m *Manager) entryPath(key string) string {
	return filepath.Join(m.basePath, key+".png")
}

// Get returns the cached thumbnail path for key, if present.
func (m *Manager) Get(key string) (string, bool) {
	path := m.entryPath(key)
	if _, err := m.fs.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Put copies a rendered thumbnail into the cache and returns the cached
// path. The source is read before the caller destroys its scratch directory.
func (m *Manager) Put(key, srcPath string) (string, error) {
	ctx := context.Background()

	data, err := m.fs.ReadFile(srcPath)
	if err != nil {
		return "", &Error{Operation: "put - read thumbnail", Path: srcPath, Err: err}
	}

	path := m.entryPath(key)
	if err := m.fs.WriteFile(path, data, 0o644); err != nil {
		m.logger.ErrorContext(ctx, "failed to store thumbnail",
			"error", err,
			"key", key,
			"path", path,
		)
		return "", &Error{Operation: "put - write thumbnail", Path: path, Err: err}
	}

	m.logger.DebugContext(ctx, "thumbnail cached", "key", key, "path", path)
	return path, nil
}

// Sweep removes cache entries older than the default TTL and returns how
// many were deleted.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	entries, err := m.fs.ReadDir(m.basePath)
	if err != nil {
		return 0, &Error{Operation: "sweep - read directory", Path: m.basePath, Err: err}
	}

	cutoff := time.Now().Add(-m.defaultTTL)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(m.basePath, entry.Name())
		if err := m.fs.RemoveAll(path); err != nil {
			m.logger.WarnContext(ctx, "failed to remove stale thumbnail",
				"error", err,
				"path", path,
			)
			continue
		}
		removed++
	}

	if removed > 0 {
		m.logger.InfoContext(ctx, "cache sweep finished",
			"removed", removed,
			"ttl", m.defaultTTL,
		)
	}
	return removed, nil
}
