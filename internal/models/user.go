package models

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// UserRanks holds the server-supplied rank strings per metric. Ranks arrive
// as integers on the wire but are opaque to the client: a placeholder like
// "-" must survive decoding, so each field is kept as a string.
type UserRanks struct {
	Keys     string `json:"keys"`
	Clicks   string `json:"clicks"`
	Download string `json:"download"`
	Upload   string `json:"upload"`
	Uptime   string `json:"uptime"`
	Scrolls  string `json:"scrolls"`
	Distance string `json:"distance"`
}

// UserStats is the flattened statistics record for a single account.
// The wire format nests the counters under "totals"; see user_codec.go.
type UserStats struct {
	AccountName   string
	Keys          int64
	Clicks        int64
	DownloadMB    int64
	UploadMB      int64
	UptimeSeconds int64
	DateJoined    string
	LastPulse     string
	DistanceMiles *float64
	Ranks         UserRanks
}

const secondsPerDay = 86400

// UptimeDays floors the divisor at one day so per-day averages never divide
// by zero for fresh accounts.
func (u *UserStats) UptimeDays() int64 {
	days := u.UptimeSeconds / secondsPerDay
	if days < 1 {
		return 1
	}
	return days
}

func (u *UserStats) KeysPerDay() int64 {
	return u.Keys / u.UptimeDays()
}

func (u *UserStats) ClicksPerDay() int64 {
	return u.Clicks / u.UptimeDays()
}

// DownloadBytesPerDay returns the average downloaded bytes per tracked day.
func (u *UserStats) DownloadBytesPerDay() int64 {
	dailyMB := float64(u.DownloadMB) / float64(u.UptimeDays())
	return int64(dailyMB * 1024 * 1024)
}

func (u *UserStats) UploadBytesPerDay() int64 {
	dailyMB := float64(u.UploadMB) / float64(u.UptimeDays())
	return int64(dailyMB * 1024 * 1024)
}

// DownloadBytes converts the megabyte counter to bytes.
func (u *UserStats) DownloadBytes() int64 {
	return u.DownloadMB * 1024 * 1024
}

func (u *UserStats) UploadBytes() int64 {
	return u.UploadMB * 1024 * 1024
}

// Placeholder is rendered by at-a-glance surfaces before a real record is
// available.
func Placeholder() *UserStats {
	distance := 12.3
	return &UserStats{
		AccountName:   "SampleUser",
		Keys:          123456,
		Clicks:        78910,
		DownloadMB:    12345,
		UploadMB:      6789,
		UptimeSeconds: 36000,
		DateJoined:    "2024-01-01",
		LastPulse:     "2025-05-30",
		DistanceMiles: &distance,
		Ranks: UserRanks{
			Keys:     "999",
			Clicks:   "999",
			Download: "999",
			Upload:   "999",
			Uptime:   "999",
			Scrolls:  "999",
			Distance: "999",
		},
	}
}

// rankString decodes a rank field that may arrive as a JSON number or a
// string placeholder.
type rankString string

func (r *rankString) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = rankString(cast.ToString(raw))
	return nil
}
