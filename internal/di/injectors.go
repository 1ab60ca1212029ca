//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"pulsetrack/internal"
	"pulsetrack/internal/client"
	"pulsetrack/internal/controllers"
	"pulsetrack/internal/providers"
	"pulsetrack/internal/refresh"
	"pulsetrack/internal/services"
	"pulsetrack/internal/storage"
	"pulsetrack/internal/store"
	"pulsetrack/internal/structures"
	"pulsetrack/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		storage.NewZstdCompressor,
		storage.NewFileStore,
		client.NewFetcher,
		tracker.NewUnlockTracker,
		store.NewUserStore,
		services.NewStatsService,
		refresh.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
