// Package scratch manages the ephemeral per-request directories that hold
// generated preview artifacts. A scratch directory is owned exclusively by
// the request that created it and must never outlive that request.
package scratch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const dirPrefix = "pdfpeek-"

// Manager creates and destroys uniquely named scratch directories under a
// common root (the system temp directory by default).
type Manager struct {
	fs     FileSystem
	root   string
	logger *slog.Logger
}

// NewManager creates a scratch directory manager. A nil fs defaults to the
// OS filesystem, an empty root to os.TempDir(), a nil logger to discard.
func NewManager(fs FileSystem, root string, logger *slog.Logger) *Manager {
	if fs == nil {
		fs = NewOSFileSystem()
	}
	if root == "" {
		root = os.TempDir()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{fs: fs, root: root, logger: logger}
}

// Create makes a fresh uniquely named scratch directory and returns its path.
// Concurrent requests each get their own directory, so no coordination is
// needed beyond unique naming.
func (m *Manager) Create() (string, error) {
	dir := filepath.Join(m.root, dirPrefix+uuid.NewString())
	if err := m.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory %s: %w", dir, err)
	}
	m.logger.Debug("scratch directory created", "dir", dir)
	return dir, nil
}

// Remove deletes a scratch directory recursively. It is called on every
// completion path of a preview request; a deletion failure is logged and
// swallowed because nothing upstream can act on it.
func (m *Manager) Remove(dir string) {
	if dir == "" {
		return
	}
	if err := m.fs.RemoveAll(dir); err != nil {
		m.logger.Warn("failed to remove scratch directory", "dir", dir, "error", err)
		return
	}
	m.logger.Debug("scratch directory removed", "dir", dir)
}
