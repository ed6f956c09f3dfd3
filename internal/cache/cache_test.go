package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krivenkov/pdfpeek/internal/scratch"
)

func newTestManager(t *testing.T, ttl time.Duration) (*Manager, scratch.FileSystem) {
	t.Helper()
	fs := scratch.NewMemMapFileSystem()
	m, err := NewManager(Config{
		BasePath:   "/cache",
		DefaultTTL: ttl,
		FileSystem: fs,
	})
	require.NoError(t, err)
	return m, fs
}

func TestKey(t *testing.T) {
	now := time.Now()

	same := Key("/docs/a.pdf", 100, now)
	assert.Equal(t, same, Key("/docs/a.pdf", 100, now))

	assert.NotEqual(t, same, Key("/docs/b.pdf", 100, now))
	assert.NotEqual(t, same, Key("/docs/a.pdf", 101, now))
	assert.NotEqual(t, same, Key("/docs/a.pdf", 100, now.Add(time.Second)))
}

func TestPutGet(t *testing.T) {
	m, fs := newTestManager(t, time.Hour)
	require.NoError(t, fs.WriteFile("/scratch/preview-1.png", []byte("png-bytes"), 0o644))

	key := Key("/docs/a.pdf", 9, time.Now())

	_, ok := m.Get(key)
	assert.False(t, ok)

	path, err := m.Put(key, "/scratch/preview-1.png")
	require.NoError(t, err)

	got, ok := m.Get(key)
	require.True(t, ok)
	assert.Equal(t, path, got)

	data, err := fs.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestPut_MissingSource(t *testing.T) {
	m, _ := newTestManager(t, time.Hour)

	_, err := m.Put("somekey", "/scratch/nope.png")

	var cacheErr *Error
	require.ErrorAs(t, err, &cacheErr)
	assert.Equal(t, "put - read thumbnail", cacheErr.Operation)
}

func TestSweep(t *testing.T) {
	// A negative TTL puts the cutoff in the future, so every entry is stale.
	m, fs := newTestManager(t, -time.Hour)
	require.NoError(t, fs.WriteFile("/scratch/preview-1.png", []byte("png"), 0o644))

	key := Key("/docs/a.pdf", 3, time.Now())
	_, err := m.Put(key, "/scratch/preview-1.png")
	require.NoError(t, err)

	removed, err := m.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := m.Get(key)
	assert.False(t, ok)
}

func TestSweep_KeepsFreshEntries(t *testing.T) {
	m, fs := newTestManager(t, time.Hour)
	require.NoError(t, fs.WriteFile("/scratch/preview-1.png", []byte("png"), 0o644))

	key := Key("/docs/a.pdf", 3, time.Now())
	_, err := m.Put(key, "/scratch/preview-1.png")
	require.NoError(t, err)

	removed, err := m.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, ok := m.Get(key)
	assert.True(t, ok)
}
