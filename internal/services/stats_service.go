// Package services composes the derivation engine, the tracked-user store
// and the unlock tracker into the operations the HTTP surface exposes.
package services

import (
	"context"

	"pulsetrack/internal/client"
	"pulsetrack/internal/milestones"
	"pulsetrack/internal/models"
	"pulsetrack/internal/providers"
	"pulsetrack/internal/ranking"
	"pulsetrack/internal/storage"
	"pulsetrack/internal/store"
	"pulsetrack/internal/tracker"
)

// FavoriteTarget selects which platform-local "currently displayed"
// key a favorite operation touches.
type FavoriteTarget string

const (
	TargetWidget FavoriteTarget = "widget"
	TargetWatch  FavoriteTarget = "watch"
	TargetTV     FavoriteTarget = "tv"
)

var favoriteKeys = map[FavoriteTarget]string{
	TargetWidget: storage.KeyWidgetUser,
	TargetWatch:  storage.KeyWatchUsername,
	TargetTV:     storage.KeyLastTVUsername,
}

type StatsServiceInterface interface {
	UserDetail(ctx context.Context, username string) (*DetailView, bool)
	Milestones(ctx context.Context, username string) ([]CategoryView, bool)
	AcknowledgeMilestone(id string) bool
	UnlockedMilestones() []string
	ResetUnlocks()
	Ranking(metric ranking.Metric) []ranking.Entry
	TrackedUsers() []*models.UserStats
	TrackUser(ctx context.Context, username string) (added bool, found bool)
	RemoveUser(index int) bool
	RefreshAll(ctx context.Context)
	FlushAll()
	Favorite(target FavoriteTarget) (string, bool)
	SetFavorite(target FavoriteTarget, username string) bool
	RefreshFavorite(ctx context.Context)
	WidgetView(ctx context.Context) *WidgetView
}

type StatsService struct {
	users   store.UserStoreInterface
	fetcher client.FetcherInterface
	unlocks tracker.UnlockTrackerInterface
	kv      storage.KVStoreInterface
	logger  providers.Logger
}

func NewStatsService(users store.UserStoreInterface, fetcher client.FetcherInterface, unlocks tracker.UnlockTrackerInterface, kv storage.KVStoreInterface, logger providers.Logger) StatsServiceInterface {
	return &StatsService{
		users:   users,
		fetcher: fetcher,
		unlocks: unlocks,
		kv:      kv,
		logger:  logger,
	}
}

func (s *StatsService) UserDetail(ctx context.Context, username string) (*DetailView, bool) {
	user, ok := s.fetcher.FetchUser(ctx, username)
	if !ok {
		return nil, false
	}
	return NewDetailView(user), true
}

func (s *StatsService) Milestones(ctx context.Context, username string) ([]CategoryView, bool) {
	user, ok := s.fetcher.FetchUser(ctx, username)
	if !ok {
		return nil, false
	}

	categories := milestones.CategoriesFor(user)
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		view := CategoryView{Summary: c.Summary()}
		for _, card := range c.TierCards() {
			view.Tiers = append(view.Tiers, TierView{
				TierCard: card,
				Unlocked: s.unlocks.IsUnlocked(card.ID),
			})
		}
		views = append(views, view)
	}
	return views, true
}

// AcknowledgeMilestone records the celebration for an achieved tier. Only
// identifiers from the fixed category ladders are accepted.
func (s *StatsService) AcknowledgeMilestone(id string) bool {
	if !milestones.ValidTierID(id) {
		return false
	}
	s.unlocks.Unlock(id)
	return true
}

func (s *StatsService) UnlockedMilestones() []string {
	return s.unlocks.Unlocked()
}

func (s *StatsService) ResetUnlocks() {
	s.unlocks.Reset()
}

func (s *StatsService) Ranking(metric ranking.Metric) []ranking.Entry {
	return ranking.Build(s.users.Users(), metric)
}

func (s *StatsService) TrackedUsers() []*models.UserStats {
	return s.users.Users()
}

func (s *StatsService) TrackUser(ctx context.Context, username string) (bool, bool) {
	user, ok := s.fetcher.FetchUser(ctx, username)
	if !ok {
		return false, false
	}
	return s.users.Add(user), true
}

func (s *StatsService) RemoveUser(index int) bool {
	return s.users.RemoveAt(index)
}

func (s *StatsService) RefreshAll(ctx context.Context) {
	s.users.RefreshAll(ctx)
}

// FlushAll clears every piece of local state: tracked users, favorite
// selections and the unlock set.
func (s *StatsService) FlushAll() {
	s.users.Flush()
	for _, key := range favoriteKeys {
		s.kv.Delete(key)
	}
	s.unlocks.Reset()
	s.logger.Infof(providers.TypeApp, "All local data flushed")
}

func (s *StatsService) Favorite(target FavoriteTarget) (string, bool) {
	key, ok := favoriteKeys[target]
	if !ok {
		return "", false
	}
	data, ok := s.kv.Get(key)
	if !ok || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// SetFavorite stores the selection and supersedes in-flight fetches: a
// result issued for the previous selection must not land on the new one.
func (s *StatsService) SetFavorite(target FavoriteTarget, username string) bool {
	key, ok := favoriteKeys[target]
	if !ok || username == "" {
		return false
	}
	s.kv.Set(key, []byte(username))
	s.fetcher.Supersede()
	return true
}

// RefreshFavorite re-fetches the widget favorite to keep its cached record
// warm. The fetcher discards the result if the selection changes while the
// request is in flight.
func (s *StatsService) RefreshFavorite(ctx context.Context) {
	username, ok := s.Favorite(TargetWidget)
	if !ok {
		return
	}

	if _, ok := s.fetcher.FetchUser(ctx, username); !ok {
		s.logger.Debugf(providers.TypeApp, "Favorite refresh for %s yielded no result", username)
	}
}

func (s *StatsService) WidgetView(ctx context.Context) *WidgetView {
	username, ok := s.Favorite(TargetWidget)
	if !ok {
		return NewWidgetView(models.Placeholder(), true)
	}

	user, ok := s.fetcher.FetchUser(ctx, username)
	if !ok {
		return NewWidgetView(models.Placeholder(), true)
	}
	return NewWidgetView(user, false)
}
