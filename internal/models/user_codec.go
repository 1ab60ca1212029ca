package models

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ApiResponse is the envelope returned by the statistics service.
type ApiResponse struct {
	User *UserStats `json:"user"`
}

type wireTotals struct {
	Keys          int64    `json:"keys"`
	Clicks        int64    `json:"clicks"`
	DownloadMB    int64    `json:"download_mb"`
	UploadMB      int64    `json:"upload_mb"`
	UptimeSeconds int64    `json:"uptime_seconds"`
	DistanceMiles *float64 `json:"distance_miles"`
}

type wireRanks struct {
	Keys     rankString `json:"keys"`
	Clicks   rankString `json:"clicks"`
	Download rankString `json:"download"`
	Upload   rankString `json:"upload"`
	Uptime   rankString `json:"uptime"`
	Scrolls  rankString `json:"scrolls"`
	Distance rankString `json:"distance"`
}

type wireUser struct {
	Username      string     `json:"username"`
	DateJoined    string     `json:"date_joined"`
	LastPulseDate string     `json:"last_pulse_date"`
	Totals        wireTotals `json:"totals"`
	Ranks         wireRanks  `json:"ranks"`
}

// UnmarshalJSON flattens the nested wire shape into the UserStats record.
func (u *UserStats) UnmarshalJSON(data []byte) error {
	var w wireUser
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	u.AccountName = w.Username
	u.DateJoined = w.DateJoined
	u.LastPulse = w.LastPulseDate
	u.Keys = w.Totals.Keys
	u.Clicks = w.Totals.Clicks
	u.DownloadMB = w.Totals.DownloadMB
	u.UploadMB = w.Totals.UploadMB
	u.UptimeSeconds = w.Totals.UptimeSeconds
	u.DistanceMiles = w.Totals.DistanceMiles
	u.Ranks = UserRanks{
		Keys:     string(w.Ranks.Keys),
		Clicks:   string(w.Ranks.Clicks),
		Download: string(w.Ranks.Download),
		Upload:   string(w.Ranks.Upload),
		Uptime:   string(w.Ranks.Uptime),
		Scrolls:  string(w.Ranks.Scrolls),
		Distance: string(w.Ranks.Distance),
	}
	return nil
}

// MarshalJSON writes the record back in the wire shape so persisted users
// decode with the same codec. Rank strings are re-encoded numerically where
// they parse, matching the server's integer fields.
func (u *UserStats) MarshalJSON() ([]byte, error) {
	w := wireUser{
		Username:      u.AccountName,
		DateJoined:    u.DateJoined,
		LastPulseDate: u.LastPulse,
		Totals: wireTotals{
			Keys:          u.Keys,
			Clicks:        u.Clicks,
			DownloadMB:    u.DownloadMB,
			UploadMB:      u.UploadMB,
			UptimeSeconds: u.UptimeSeconds,
			DistanceMiles: u.DistanceMiles,
		},
	}

	ranks := map[string]interface{}{
		"keys":     encodeRank(u.Ranks.Keys),
		"clicks":   encodeRank(u.Ranks.Clicks),
		"download": encodeRank(u.Ranks.Download),
		"upload":   encodeRank(u.Ranks.Upload),
		"uptime":   encodeRank(u.Ranks.Uptime),
		"scrolls":  encodeRank(u.Ranks.Scrolls),
		"distance": encodeRank(u.Ranks.Distance),
	}

	return json.Marshal(struct {
		Username      string                 `json:"username"`
		DateJoined    string                 `json:"date_joined"`
		LastPulseDate string                 `json:"last_pulse_date"`
		Totals        wireTotals             `json:"totals"`
		Ranks         map[string]interface{} `json:"ranks"`
	}{
		Username:      w.Username,
		DateJoined:    w.DateJoined,
		LastPulseDate: w.LastPulseDate,
		Totals:        w.Totals,
		Ranks:         ranks,
	})
}

func encodeRank(v string) interface{} {
	if n, err := cast.ToInt64E(v); err == nil {
		return n
	}
	return v
}
