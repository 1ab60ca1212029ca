package testutil

import (
	"context"
	"sync"
	"time"

	"pulsetrack/internal/models"
	"pulsetrack/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockKV implements storage.KVStoreInterface in memory and counts
// persistence writes.
type MockKV struct {
	mu           sync.Mutex
	Data         map[string][]byte
	PersistCalls int
	DeleteCalls  []string
}

func NewMockKV() *MockKV {
	return &MockKV{Data: make(map[string][]byte)}
}

func (m *MockKV) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockKV) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
	m.PersistCalls++
}

func (m *MockKV) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
	m.DeleteCalls = append(m.DeleteCalls, key)
	m.PersistCalls++
}

func (m *MockKV) Persist() error { return nil }
func (m *MockKV) Close()         {}

// MockFetcher implements client.FetcherInterface against a fixed user map.
type MockFetcher struct {
	mu          sync.Mutex
	UsersByName map[string]*models.UserStats
	Failing     map[string]bool
	FetchCalls  []string
	generation  uint64
}

func NewMockFetcher(users ...*models.UserStats) *MockFetcher {
	f := &MockFetcher{
		UsersByName: make(map[string]*models.UserStats),
		Failing:     make(map[string]bool),
	}
	for _, u := range users {
		f.UsersByName[u.AccountName] = u
	}
	return f
}

func (m *MockFetcher) FetchUser(_ context.Context, username string) (*models.UserStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls = append(m.FetchCalls, username)
	if m.Failing[username] {
		return nil, false
	}
	user, ok := m.UsersByName[username]
	return user, ok
}

func (m *MockFetcher) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation
}

func (m *MockFetcher) Supersede() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	return m.generation
}

func (m *MockFetcher) IsCurrent(generation uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation == generation
}

// MockMetrics implements providers.MetricsProviderInterface and records
// counts.
type MockMetrics struct {
	mu            sync.Mutex
	FetchResults  []string
	CacheHits     int
	CacheMisses   int
	TrackedUsers  int
	RequestCalls  int
	DurationCalls int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCalls++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DurationCalls++
}

func (m *MockMetrics) IncFetchTotal(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchResults = append(m.FetchResults, result)
}

func (m *MockMetrics) ObserveFetchDuration(_ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) SetTrackedUsers(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TrackedUsers = count
}

// MockCache implements providers.CacheProviderInterface in memory.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// User builds a test record with sane defaults.
func User(name string, keys, clicks int64) *models.UserStats {
	return &models.UserStats{
		AccountName:   name,
		Keys:          keys,
		Clicks:        clicks,
		DownloadMB:    2048,
		UploadMB:      1024,
		UptimeSeconds: 90000,
		DateJoined:    "2024-01-01T00:00:00.000Z",
		LastPulse:     "2025-05-30T12:30:00.000Z",
		Ranks: models.UserRanks{
			Keys:     "1200",
			Clicks:   "3400",
			Download: "560",
			Upload:   "780",
			Uptime:   "90",
			Scrolls:  "-",
			Distance: "N/A",
		},
	}
}
