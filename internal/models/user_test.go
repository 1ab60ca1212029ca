package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"user": {
		"username": "tester",
		"date_joined": "2020-03-14T09:26:53.000Z",
		"last_pulse_date": "2025-05-30T12:30:00.000Z",
		"totals": {
			"keys": 150000,
			"clicks": 48000,
			"download_mb": 2048,
			"upload_mb": 512,
			"uptime_seconds": 90061,
			"distance_miles": 42.5
		},
		"ranks": {
			"keys": 1200,
			"clicks": 3400,
			"download": 560,
			"upload": 780,
			"uptime": 90,
			"scrolls": "-",
			"distance": "N/A"
		}
	}
}`

func TestApiResponse_Decode(t *testing.T) {
	var resp ApiResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &resp))
	require.NotNil(t, resp.User)

	u := resp.User
	assert.Equal(t, "tester", u.AccountName)
	assert.Equal(t, "2020-03-14T09:26:53.000Z", u.DateJoined)
	assert.Equal(t, "2025-05-30T12:30:00.000Z", u.LastPulse)
	assert.Equal(t, int64(150000), u.Keys)
	assert.Equal(t, int64(48000), u.Clicks)
	assert.Equal(t, int64(2048), u.DownloadMB)
	assert.Equal(t, int64(512), u.UploadMB)
	assert.Equal(t, int64(90061), u.UptimeSeconds)
	require.NotNil(t, u.DistanceMiles)
	assert.Equal(t, 42.5, *u.DistanceMiles)
}

func TestApiResponse_DecodeRanksTolerant(t *testing.T) {
	var resp ApiResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &resp))

	// Numeric ranks become strings, placeholders survive as-is.
	assert.Equal(t, "1200", resp.User.Ranks.Keys)
	assert.Equal(t, "90", resp.User.Ranks.Uptime)
	assert.Equal(t, "-", resp.User.Ranks.Scrolls)
	assert.Equal(t, "N/A", resp.User.Ranks.Distance)
}

func TestUserStats_DecodeWithoutDistance(t *testing.T) {
	var u UserStats
	require.NoError(t, json.Unmarshal([]byte(`{"username":"desk","totals":{"keys":10}}`), &u))

	assert.Equal(t, "desk", u.AccountName)
	assert.Equal(t, int64(10), u.Keys)
	assert.Nil(t, u.DistanceMiles)
}

func TestUserStats_MarshalRoundTrip(t *testing.T) {
	var original ApiResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &original))

	data, err := json.Marshal(original.User)
	require.NoError(t, err)

	var restored UserStats
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *original.User, restored)
}

func TestUserStats_UptimeDays(t *testing.T) {
	u := &UserStats{UptimeSeconds: 259200}
	assert.Equal(t, int64(3), u.UptimeDays())

	// Fresh accounts floor at one day to keep averages meaningful.
	fresh := &UserStats{UptimeSeconds: 3600}
	assert.Equal(t, int64(1), fresh.UptimeDays())

	zero := &UserStats{}
	assert.Equal(t, int64(1), zero.UptimeDays())
}

func TestUserStats_PerDayAverages(t *testing.T) {
	u := &UserStats{
		Keys:          300000,
		Clicks:        90000,
		DownloadMB:    3072,
		UploadMB:      1536,
		UptimeSeconds: 259200,
	}

	assert.Equal(t, int64(100000), u.KeysPerDay())
	assert.Equal(t, int64(30000), u.ClicksPerDay())
	assert.Equal(t, int64(1073741824), u.DownloadBytesPerDay())
	assert.Equal(t, int64(536870912), u.UploadBytesPerDay())
}

func TestUserStats_ByteCounters(t *testing.T) {
	u := &UserStats{DownloadMB: 2048, UploadMB: 1}
	assert.Equal(t, int64(2147483648), u.DownloadBytes())
	assert.Equal(t, int64(1048576), u.UploadBytes())
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()

	assert.Equal(t, "SampleUser", p.AccountName)
	assert.Equal(t, int64(123456), p.Keys)
	require.NotNil(t, p.DistanceMiles)
	assert.Equal(t, 12.3, *p.DistanceMiles)
}
