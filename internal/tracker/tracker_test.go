package tracker

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetrack/internal/storage"
	"pulsetrack/internal/testutil"
)

func newTestTracker() (UnlockTrackerInterface, *testutil.MockKV) {
	kv := testutil.NewMockKV()
	return NewUnlockTracker(kv, &testutil.MockLogger{}), kv
}

func TestUnlockTracker_Unlock(t *testing.T) {
	tr, kv := newTestTracker()

	tr.Unlock("keystrokes_100000")

	assert.True(t, tr.IsUnlocked("keystrokes_100000"))
	assert.False(t, tr.IsUnlocked("clicks_50000"))
	assert.Equal(t, 1, kv.PersistCalls)
}

func TestUnlockTracker_UnlockIsIdempotent(t *testing.T) {
	tr, kv := newTestTracker()

	tr.Unlock("keystrokes_100000")
	tr.Unlock("keystrokes_100000")

	assert.Equal(t, []string{"keystrokes_100000"}, tr.Unlocked())
	// The duplicate must not write the store again.
	assert.Equal(t, 1, kv.PersistCalls)
}

func TestUnlockTracker_UnlockedSorted(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Unlock("uptime_86400")
	tr.Unlock("clicks_50000")
	tr.Unlock("keystrokes_100000")

	assert.Equal(t, []string{"clicks_50000", "keystrokes_100000", "uptime_86400"}, tr.Unlocked())
}

func TestUnlockTracker_Reset(t *testing.T) {
	tr, kv := newTestTracker()

	tr.Unlock("keystrokes_100000")
	tr.Reset()

	assert.Empty(t, tr.Unlocked())
	assert.False(t, tr.IsUnlocked("keystrokes_100000"))

	var stored []string
	require.NoError(t, json.Unmarshal(kv.Data[storage.KeyUnlocked], &stored))
	assert.Empty(t, stored)
}

func TestUnlockTracker_LoadsPersistedSet(t *testing.T) {
	kv := testutil.NewMockKV()
	kv.Data[storage.KeyUnlocked] = []byte(`["clicks_50000","keystrokes_100000"]`)

	tr := NewUnlockTracker(kv, &testutil.MockLogger{})

	assert.True(t, tr.IsUnlocked("clicks_50000"))
	assert.True(t, tr.IsUnlocked("keystrokes_100000"))
	assert.Equal(t, []string{"clicks_50000", "keystrokes_100000"}, tr.Unlocked())
}

func TestUnlockTracker_MalformedDataStartsEmpty(t *testing.T) {
	kv := testutil.NewMockKV()
	kv.Data[storage.KeyUnlocked] = []byte(`{not json`)
	logger := &testutil.MockLogger{}

	tr := NewUnlockTracker(kv, logger)

	assert.Empty(t, tr.Unlocked())
	require.Len(t, logger.Logs, 1)
	assert.Equal(t, "warn", logger.Logs[0].Level)
}
