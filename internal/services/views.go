package services

import (
	"fmt"

	"pulsetrack/internal/format"
	"pulsetrack/internal/milestones"
	"pulsetrack/internal/models"
)

// StatLine pairs a raw metric with its formatted value and the
// server-supplied rank label.
type StatLine struct {
	Raw     int64  `json:"raw"`
	Display string `json:"display"`
	Rank    string `json:"rank"`
}

// Insights are the per-day averages shown on the detail surface.
type Insights struct {
	UptimeDays     int64  `json:"uptime_days"`
	KeysPerDay     int64  `json:"keys_per_day"`
	ClicksPerDay   int64  `json:"clicks_per_day"`
	DownloadPerDay string `json:"download_per_day"`
	UploadPerDay   string `json:"upload_per_day"`
	StadiumRounds  string `json:"stadium_rounds"`
}

// DetailView is the fully formatted single-user record.
type DetailView struct {
	AccountName string    `json:"account_name"`
	DateJoined  string    `json:"date_joined"`
	LastPulse   string    `json:"last_pulse"`
	Keys        StatLine  `json:"keys"`
	Clicks      StatLine  `json:"clicks"`
	Download    StatLine  `json:"download"`
	Upload      StatLine  `json:"upload"`
	Uptime      StatLine  `json:"uptime"`
	Distance    *StatLine `json:"distance,omitempty"`
	ScrollsRank string    `json:"scrolls_rank"`
	Insights    Insights  `json:"insights"`
}

// A lap around an olympic stadium track, in miles.
const stadiumLapMiles = 0.11938

func NewDetailView(user *models.UserStats) *DetailView {
	view := &DetailView{
		AccountName: user.AccountName,
		DateJoined:  format.ISODate(user.DateJoined),
		LastPulse:   format.ISODate(user.LastPulse),
		Keys: StatLine{
			Raw:     user.Keys,
			Display: format.Integer(user.Keys),
			Rank:    format.Rank(user.Ranks.Keys),
		},
		Clicks: StatLine{
			Raw:     user.Clicks,
			Display: format.Integer(user.Clicks),
			Rank:    format.Rank(user.Ranks.Clicks),
		},
		Download: StatLine{
			Raw:     user.DownloadBytes(),
			Display: format.Bytes(user.DownloadBytes()),
			Rank:    format.Rank(user.Ranks.Download),
		},
		Upload: StatLine{
			Raw:     user.UploadBytes(),
			Display: format.Bytes(user.UploadBytes()),
			Rank:    format.Rank(user.Ranks.Upload),
		},
		Uptime: StatLine{
			Raw:     user.UptimeSeconds,
			Display: format.Uptime(user.UptimeSeconds),
			Rank:    format.Rank(user.Ranks.Uptime),
		},
		ScrollsRank: format.Rank(user.Ranks.Scrolls),
		Insights: Insights{
			UptimeDays:     user.UptimeDays(),
			KeysPerDay:     user.KeysPerDay(),
			ClicksPerDay:   user.ClicksPerDay(),
			DownloadPerDay: format.Bytes(user.DownloadBytesPerDay()),
			UploadPerDay:   format.Bytes(user.UploadBytesPerDay()),
			StadiumRounds:  "N/A",
		},
	}

	if user.DistanceMiles != nil {
		miles := *user.DistanceMiles
		view.Distance = &StatLine{
			Raw:     int64(miles),
			Display: format.Distance(miles),
			Rank:    format.Rank(user.Ranks.Distance),
		}
		view.Insights.StadiumRounds = fmt.Sprintf("%.0f rounds", miles/stadiumLapMiles)
	}

	return view
}

// TierView augments a tier card with its persisted acknowledgment state.
type TierView struct {
	milestones.TierCard
	Unlocked bool `json:"unlocked"`
}

// CategoryView is a milestone category with its compact summary and the
// full tier ladder.
type CategoryView struct {
	Summary milestones.Summary `json:"summary"`
	Tiers   []TierView         `json:"tiers"`
}

// WidgetView is the compact at-a-glance payload.
type WidgetView struct {
	AccountName string `json:"account_name"`
	Keys        string `json:"keys"`
	Clicks      string `json:"clicks"`
	Download    string `json:"download"`
	Upload      string `json:"upload"`
	Uptime      string `json:"uptime"`
	LastPulse   string `json:"last_pulse"`
	Placeholder bool   `json:"placeholder"`
}

func NewWidgetView(user *models.UserStats, placeholder bool) *WidgetView {
	return &WidgetView{
		AccountName: user.AccountName,
		Keys:        format.ShortNumber(user.Keys),
		Clicks:      format.ShortNumber(user.Clicks),
		Download:    format.ShortBytes(user.DownloadBytes()),
		Upload:      format.ShortBytes(user.UploadBytes()),
		Uptime:      format.Uptime(user.UptimeSeconds),
		LastPulse:   format.ISODate(user.LastPulse),
		Placeholder: placeholder,
	}
}
