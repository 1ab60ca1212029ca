// Package refresh drives the periodic background work: re-fetching the
// favorite user the way the television surface polls, and flushing the
// key/value store to disk.
package refresh

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"pulsetrack/internal/providers"
	"pulsetrack/internal/services"
	"pulsetrack/internal/storage"
	"pulsetrack/internal/structures"
)

type SchedulerInterface interface {
	Init()
	Stop()
	Persist() error
}

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.StatsServiceInterface
	kv      storage.KVStoreInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.StatsServiceInterface, kv storage.KVStoreInterface) SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		kv:      kv,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Refresh.Interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Debugf(providers.TypeApp, "Refreshing favorite user...")
		s.service.RefreshFavorite(context.Background())
	})

	s.cron.AddFunc(gron.Every(s.config.Storage.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.kv.Persist(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted state to file %s", s.config.Storage.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting state to file...")
	if err := s.kv.Persist(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}
