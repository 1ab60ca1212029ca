// Package client talks to the remote statistics service. Transport
// failures, bad usernames and undecodable bodies all collapse into the
// same absent-result contract: callers get (nil, false) and decide how to
// render "not found", never an error.
package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"pulsetrack/internal/models"
	"pulsetrack/internal/providers"
	"pulsetrack/internal/structures"
)

const maxResponseBodySize = 1 << 20 // 1 MB

type FetcherInterface interface {
	FetchUser(ctx context.Context, username string) (*models.UserStats, bool)
	Generation() uint64
	Supersede() uint64
	IsCurrent(generation uint64) bool
}

type Fetcher struct {
	conf    *structures.Config
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
	client  *http.Client

	// generation marks the newest display intent. A fetch captures the
	// generation when it starts; if a Supersede lands before the response
	// does, the result is discarded instead of cached.
	generation atomic.Uint64
}

func NewFetcher(conf *structures.Config, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) FetcherInterface {
	return &Fetcher{
		conf:    conf,
		logger:  logger,
		cache:   cache,
		metrics: metrics,
		client:  &http.Client{Timeout: conf.Api.Timeout},
	}
}

func (f *Fetcher) Generation() uint64 {
	return f.generation.Load()
}

func (f *Fetcher) Supersede() uint64 {
	return f.generation.Inc()
}

func (f *Fetcher) IsCurrent(generation uint64) bool {
	return f.generation.Load() == generation
}

func (f *Fetcher) FetchUser(ctx context.Context, username string) (*models.UserStats, bool) {
	generation := f.generation.Load()

	cacheKey := "user:" + username
	if data, ok := f.cache.Get(cacheKey); ok {
		f.metrics.IncCacheHits()
		if user := decodeUser(data); user != nil {
			return user, true
		}
	}
	f.metrics.IncCacheMisses()

	endpoint := f.conf.Api.BaseURL + "/api/v1/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		f.logger.Errorf(providers.TypeGet, "Invalid fetch request for %s: %s", username, err)
		f.metrics.IncFetchTotal(providers.FetchResultError)
		return nil, false
	}
	req.Header.Set("Authorization", "Bearer "+f.conf.Api.Key)

	start := time.Now()
	resp, err := f.client.Do(req)
	f.metrics.ObserveFetchDuration(time.Since(start))
	if err != nil {
		f.logger.Warnf(providers.TypeGet, "Fetch failed for %s: %s", username, err)
		f.metrics.IncFetchTotal(providers.FetchResultError)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debugf(providers.TypeGet, "Fetch for %s returned status %d", username, resp.StatusCode)
		f.metrics.IncFetchTotal(providers.FetchResultMiss)
		return nil, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		f.logger.Warnf(providers.TypeGet, "Failed to read response for %s: %s", username, err)
		f.metrics.IncFetchTotal(providers.FetchResultError)
		return nil, false
	}

	user := decodeUser(body)
	if user == nil {
		f.logger.Warnf(providers.TypeGet, "Failed to decode response for %s", username)
		f.metrics.IncFetchTotal(providers.FetchResultError)
		return nil, false
	}

	// The selection changed while this request was in flight; the response
	// must not land in the cache or reach the caller.
	if !f.IsCurrent(generation) {
		f.logger.Debugf(providers.TypeGet, "Discarding superseded fetch result for %s", username)
		f.metrics.IncFetchTotal(providers.FetchResultStale)
		return nil, false
	}

	f.cache.Set(cacheKey, body)
	f.metrics.IncFetchTotal(providers.FetchResultOK)
	return user, true
}

func decodeUser(data []byte) *models.UserStats {
	var resp models.ApiResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	if resp.User == nil || resp.User.AccountName == "" {
		return nil
	}
	return resp.User
}
