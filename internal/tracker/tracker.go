// Package tracker records which milestone tiers the user has acknowledged.
// The set survives restarts through the key/value store and is shared by
// every surface, so there is exactly one instance per process, handed out
// through dependency injection.
package tracker

import (
	"sort"
	"sync"

	json "github.com/goccy/go-json"

	"pulsetrack/internal/providers"
	"pulsetrack/internal/storage"
)

type UnlockTrackerInterface interface {
	Unlock(id string)
	IsUnlocked(id string) bool
	Unlocked() []string
	Reset()
}

type UnlockTracker struct {
	mu     sync.RWMutex
	ids    map[string]struct{}
	kv     storage.KVStoreInterface
	logger providers.Logger
}

func NewUnlockTracker(kv storage.KVStoreInterface, logger providers.Logger) UnlockTrackerInterface {
	t := &UnlockTracker{
		ids:    make(map[string]struct{}),
		kv:     kv,
		logger: logger,
	}
	t.load()
	return t
}

// Unlock inserts the id and persists the set. Re-unlocking an id is a
// no-op and triggers no persistence write.
func (t *UnlockTracker) Unlock(id string) {
	t.mu.Lock()
	if _, ok := t.ids[id]; ok {
		t.mu.Unlock()
		return
	}
	t.ids[id] = struct{}{}
	t.mu.Unlock()

	t.save()
	t.logger.Infof(providers.TypeApp, "Milestone unlocked: %s", id)
}

func (t *UnlockTracker) IsUnlocked(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.ids[id]
	return ok
}

// Unlocked returns the ids in sorted order for deterministic output.
func (t *UnlockTracker) Unlocked() []string {
	t.mu.RLock()
	ids := make([]string, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	t.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

func (t *UnlockTracker) Reset() {
	t.mu.Lock()
	t.ids = make(map[string]struct{})
	t.mu.Unlock()

	t.save()
}

func (t *UnlockTracker) save() {
	data, err := json.Marshal(t.Unlocked())
	if err != nil {
		t.logger.Errorf(providers.TypeApp, "Failed to encode unlocked milestones: %s", err)
		return
	}
	t.kv.Set(storage.KeyUnlocked, data)
}

// load restores the set from the store; absent or malformed data yields an
// empty set, never an error.
func (t *UnlockTracker) load() {
	data, ok := t.kv.Get(storage.KeyUnlocked)
	if !ok {
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		t.logger.Warnf(providers.TypeApp, "Malformed unlocked milestones, starting empty: %s", err)
		return
	}
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}
}
