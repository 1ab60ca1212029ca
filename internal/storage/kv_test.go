package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetrack/internal/structures"
	"pulsetrack/internal/testutil"
)

func newTestStore(t *testing.T, path string) KVStoreInterface {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{}
	conf.Storage.FilePath = path
	return NewFileStore(conf, compressor, &testutil.MockLogger{})
}

func TestFileStore_SetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	fs := newTestStore(t, path)
	defer fs.Close()

	fs.Set("savedUsers", []byte(`["alice"]`))

	val, ok := fs.Get("savedUsers")
	assert.True(t, ok)
	assert.Equal(t, []byte(`["alice"]`), val)

	_, ok = fs.Get("missing")
	assert.False(t, ok)
}

func TestFileStore_SetPersistsImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	fs := newTestStore(t, path)
	defer fs.Close()

	fs.Set("key", []byte("value"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")

	first := newTestStore(t, path)
	first.Set(KeyUnlocked, []byte(`["keystrokes_100000"]`))
	first.Set(KeyWidgetUser, []byte(`"alice"`))
	first.Close()

	second := newTestStore(t, path)
	defer second.Close()

	val, ok := second.Get(KeyUnlocked)
	require.True(t, ok)
	assert.Equal(t, []byte(`["keystrokes_100000"]`), val)

	val, ok = second.Get(KeyWidgetUser)
	require.True(t, ok)
	assert.Equal(t, []byte(`"alice"`), val)
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")

	first := newTestStore(t, path)
	first.Set("key", []byte("value"))
	first.Delete("key")
	first.Close()

	_, ok := first.Get("key")
	assert.False(t, ok)

	second := newTestStore(t, path)
	defer second.Close()
	_, ok = second.Get("key")
	assert.False(t, ok)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")
	logger := &testutil.MockLogger{}
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{}
	conf.Storage.FilePath = path

	fs := NewFileStore(conf, compressor, logger)
	defer fs.Close()

	_, ok := fs.Get("anything")
	assert.False(t, ok)
	assert.Empty(t, logger.Logs)
}

func TestFileStore_CorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.bin")
	require.NoError(t, os.WriteFile(path, []byte("definitely not zstd"), 0o644))
	logger := &testutil.MockLogger{}
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{}
	conf.Storage.FilePath = path

	fs := NewFileStore(conf, compressor, logger)
	defer fs.Close()

	_, ok := fs.Get("anything")
	assert.False(t, ok)
	require.Len(t, logger.Logs, 1)
	assert.Equal(t, "warn", logger.Logs[0].Level)
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	fs := newTestStore(t, filepath.Join(dir, "state.bin"))
	defer fs.Close()

	fs.Set("key", []byte("value"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.bin", entries[0].Name())
}
