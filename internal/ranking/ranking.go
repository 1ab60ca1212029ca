// Package ranking orders tracked users by a selected metric. The numeric
// sort is local; the displayed rank itself is the server-supplied string,
// merely looked up per user.
package ranking

import (
	"fmt"
	"sort"

	"pulsetrack/internal/format"
	"pulsetrack/internal/models"
)

type Metric string

const (
	MetricKeys     Metric = "keys"
	MetricClicks   Metric = "clicks"
	MetricDownload Metric = "downloadMB"
	MetricUpload   Metric = "uploadMB"
	MetricUptime   Metric = "uptimeSeconds"
	MetricDistance Metric = "distanceMiles"
)

var metricLabels = map[Metric]string{
	MetricKeys:     "Keystrokes",
	MetricClicks:   "Clicks",
	MetricDownload: "Download",
	MetricUpload:   "Upload",
	MetricUptime:   "Uptime",
	MetricDistance: "Distance",
}

// ParseMetric validates a metric key, defaulting to keystrokes for unknown
// input.
func ParseMetric(key string) Metric {
	m := Metric(key)
	if _, ok := metricLabels[m]; ok {
		return m
	}
	return MetricKeys
}

func (m Metric) Label() string {
	return metricLabels[m]
}

// projection is the sortable numeric value of a metric for a user. Absent
// distance projects to zero.
func projection(user *models.UserStats, metric Metric) float64 {
	switch metric {
	case MetricKeys:
		return float64(user.Keys)
	case MetricClicks:
		return float64(user.Clicks)
	case MetricDownload:
		return float64(user.DownloadMB)
	case MetricUpload:
		return float64(user.UploadMB)
	case MetricUptime:
		return float64(user.UptimeSeconds)
	case MetricDistance:
		if user.DistanceMiles == nil {
			return 0
		}
		return *user.DistanceMiles
	default:
		return 0
	}
}

// SortedDescending returns a new slice ordered by the metric projection,
// highest first. The sort is stable: ties keep their insertion order.
func SortedDescending(users []*models.UserStats, metric Metric) []*models.UserStats {
	sorted := make([]*models.UserStats, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return projection(sorted[i], metric) > projection(sorted[j], metric)
	})
	return sorted
}

// RankLabel formats the server-supplied rank string for the metric.
func RankLabel(user *models.UserStats, metric Metric) string {
	var raw string
	switch metric {
	case MetricKeys:
		raw = user.Ranks.Keys
	case MetricClicks:
		raw = user.Ranks.Clicks
	case MetricDownload:
		raw = user.Ranks.Download
	case MetricUpload:
		raw = user.Ranks.Upload
	case MetricUptime:
		raw = user.Ranks.Uptime
	case MetricDistance:
		raw = user.Ranks.Distance
	default:
		raw = "-"
	}
	return format.Rank(raw)
}

// DisplayValue renders the user's metric value with the category-specific
// formatter.
func DisplayValue(user *models.UserStats, metric Metric) string {
	switch metric {
	case MetricKeys:
		return format.Integer(user.Keys)
	case MetricClicks:
		return format.Integer(user.Clicks)
	case MetricDownload:
		return format.Bytes(user.DownloadBytes())
	case MetricUpload:
		return format.Bytes(user.UploadBytes())
	case MetricUptime:
		return format.Uptime(user.UptimeSeconds)
	case MetricDistance:
		if user.DistanceMiles == nil {
			return format.Distance(0)
		}
		return format.Distance(*user.DistanceMiles)
	default:
		return "-"
	}
}

// PositionLabel decorates the top three positions (0-based index) and
// numbers everyone else.
func PositionLabel(index int) string {
	switch index {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", index+1)
	}
}

// Entry is a row of the comparative ranking view.
type Entry struct {
	Position    string `json:"position"`
	AccountName string `json:"account_name"`
	Value       string `json:"value"`
	Rank        string `json:"rank"`
}

// Build produces the full ranking table for a metric.
func Build(users []*models.UserStats, metric Metric) []Entry {
	sorted := SortedDescending(users, metric)
	entries := make([]Entry, 0, len(sorted))
	for i, user := range sorted {
		entries = append(entries, Entry{
			Position:    PositionLabel(i),
			AccountName: user.AccountName,
			Value:       DisplayValue(user, metric),
			Rank:        RankLabel(user, metric),
		})
	}
	return entries
}
