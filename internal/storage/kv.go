// Package storage is the local key/value persistence layer. The whole
// keyspace is held in memory and flushed to a single compressed file with
// an atomic replace, so a crash mid-write never corrupts the previous
// state.
package storage

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"pulsetrack/internal/providers"
	"pulsetrack/internal/structures"
)

// Well-known keys.
const (
	KeySavedUsers     = "savedUsers"
	KeyUnlocked       = "unlockedMilestones"
	KeyWidgetUser     = "widget_user"
	KeyWatchUsername  = "watchUsername"
	KeyLastTVUsername = "last_tv_username"
)

type KVStoreInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
	Persist() error
	Close()
}

type FileStore struct {
	mu         sync.RWMutex
	data       map[string][]byte
	path       string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewFileStore(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) KVStoreInterface {
	fs := &FileStore{
		data:       make(map[string][]byte),
		path:       conf.Storage.FilePath,
		compressor: compressor,
		logger:     logger,
	}
	fs.load()
	return fs
}

func (fs *FileStore) Get(key string) ([]byte, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	val, ok := fs.data[key]
	return val, ok
}

func (fs *FileStore) Set(key string, value []byte) {
	fs.mu.Lock()
	fs.data[key] = value
	fs.mu.Unlock()

	if err := fs.Persist(); err != nil {
		fs.logger.Errorf(providers.TypeApp, "Error while persisting key %s: %s", key, err)
	}
}

func (fs *FileStore) Delete(key string) {
	fs.mu.Lock()
	delete(fs.data, key)
	fs.mu.Unlock()

	if err := fs.Persist(); err != nil {
		fs.logger.Errorf(providers.TypeApp, "Error while persisting after delete of %s: %s", key, err)
	}
}

// Persist writes a compressed snapshot of the keyspace via tmp-file,
// fsync and rename.
func (fs *FileStore) Persist() error {
	fs.mu.RLock()
	snapshot := make(map[string][]byte, len(fs.data))
	for k, v := range fs.data {
		snapshot[k] = v
	}
	fs.mu.RUnlock()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := fs.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fs.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fs.path)
}

// load restores the keyspace from disk. A missing file is a fresh start;
// a corrupted one must never block startup, so it falls back to empty.
func (fs *FileStore) load() {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Errorf(providers.TypeApp, "Failed to read state file %s: %s", fs.path, err)
		}
		return
	}

	decompressed, err := fs.compressor.Decompress(raw)
	if err != nil {
		fs.logger.Warnf(providers.TypeApp, "Corrupted state file %s, starting empty: %s", fs.path, err)
		return
	}

	var data map[string][]byte
	if err := json.Unmarshal(decompressed, &data); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Malformed state file %s, starting empty: %s", fs.path, err)
		return
	}
	if data != nil {
		fs.data = data
	}
}

func (fs *FileStore) Close() {
	fs.compressor.Close()
}
