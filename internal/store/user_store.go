// Package store owns the canonical list of tracked users: ordered, unique
// by account name, persisted as JSON after every mutation.
package store

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	"pulsetrack/internal/client"
	"pulsetrack/internal/models"
	"pulsetrack/internal/providers"
	"pulsetrack/internal/storage"
	"pulsetrack/internal/structures"
)

type UserStoreInterface interface {
	Users() []*models.UserStats
	Len() int
	Add(user *models.UserStats) bool
	RemoveAt(index int) bool
	RefreshAll(ctx context.Context)
	Flush()
}

type UserStore struct {
	mu      sync.Mutex
	users   []*models.UserStats
	conf    *structures.Config
	kv      storage.KVStoreInterface
	fetcher client.FetcherInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewUserStore(conf *structures.Config, kv storage.KVStoreInterface, fetcher client.FetcherInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) UserStoreInterface {
	s := &UserStore{
		conf:    conf,
		kv:      kv,
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
	s.load()
	return s
}

// Users returns a copy of the tracked list in its stored order.
func (s *UserStore) Users() []*models.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*models.UserStats, len(s.users))
	copy(users, s.users)
	return users
}

func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Add appends the user unless the account name is already tracked. The
// first-added record wins; a duplicate never overwrites.
func (s *UserStore) Add(user *models.UserStats) bool {
	if user == nil || user.AccountName == "" {
		return false
	}

	s.mu.Lock()
	for _, existing := range s.users {
		if existing.AccountName == user.AccountName {
			s.mu.Unlock()
			return false
		}
	}
	s.users = append(s.users, user)
	count := len(s.users)
	s.mu.Unlock()

	s.save()
	s.metrics.SetTrackedUsers(count)
	return true
}

func (s *UserStore) RemoveAt(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.users) {
		s.mu.Unlock()
		return false
	}
	s.users = append(s.users[:index], s.users[index+1:]...)
	count := len(s.users)
	s.mu.Unlock()

	s.save()
	s.metrics.SetTrackedUsers(count)
	return true
}

// RefreshAll re-fetches every tracked account in its current order and
// rebuilds the list from the results. A user whose fetch fails is dropped
// unless refresh.keepUnreachable retains the stale record.
func (s *UserStore) RefreshAll(ctx context.Context) {
	s.mu.Lock()
	captured := make([]*models.UserStats, len(s.users))
	copy(captured, s.users)
	s.users = nil
	s.mu.Unlock()

	refreshed := make([]*models.UserStats, 0, len(captured))
	for _, stale := range captured {
		user, ok := s.fetcher.FetchUser(ctx, stale.AccountName)
		if ok {
			refreshed = append(refreshed, user)
			continue
		}
		if s.conf.Refresh.KeepUnreachable {
			s.logger.Warnf(providers.TypeApp, "Refresh failed for %s, keeping stale record", stale.AccountName)
			refreshed = append(refreshed, stale)
		} else {
			s.logger.Warnf(providers.TypeApp, "Refresh failed for %s, dropping from tracked list", stale.AccountName)
		}
	}

	s.mu.Lock()
	s.users = refreshed
	count := len(s.users)
	s.mu.Unlock()

	s.save()
	s.metrics.SetTrackedUsers(count)
	s.logger.Infof(providers.TypeApp, "Refreshed %d of %d tracked users", count, len(captured))
}

// Flush clears the list and deletes the persisted blob. Not reversible.
func (s *UserStore) Flush() {
	s.mu.Lock()
	s.users = nil
	s.mu.Unlock()

	s.kv.Delete(storage.KeySavedUsers)
	s.metrics.SetTrackedUsers(0)
	s.logger.Infof(providers.TypeApp, "User store flushed")
}

func (s *UserStore) save() {
	s.mu.Lock()
	users := make([]*models.UserStats, len(s.users))
	copy(users, s.users)
	s.mu.Unlock()

	data, err := json.Marshal(users)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to encode tracked users: %s", err)
		return
	}
	s.kv.Set(storage.KeySavedUsers, data)
}

// load restores the tracked list; malformed persisted data falls back to
// an empty list so startup is never blocked.
func (s *UserStore) load() {
	data, ok := s.kv.Get(storage.KeySavedUsers)
	if !ok {
		return
	}

	var users []*models.UserStats
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Warnf(providers.TypeApp, "Malformed tracked user list, starting empty: %s", err)
		return
	}
	s.users = users
	s.metrics.SetTrackedUsers(len(users))
}
