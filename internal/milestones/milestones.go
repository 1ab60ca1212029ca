// Package milestones derives the fixed category ladders and per-tier
// progress state from a user record. Nothing here is persisted; categories
// are recomputed on demand.
package milestones

import (
	"fmt"
	"math"
	"strings"

	"pulsetrack/internal/format"
	"pulsetrack/internal/models"
)

const (
	tib = int64(1024) * 1024 * 1024 * 1024
	pib = tib * 1024
)

const (
	TitleKeystrokes = "Keystrokes"
	TitleClicks     = "Clicks"
	TitleDownload   = "Download"
	TitleUpload     = "Upload"
	TitleUptime     = "Uptime"
	TitleDistance   = "Distance"
)

// Category pairs a fixed ascending tier ladder with the user's current raw
// value for that statistic.
type Category struct {
	Title        string
	Tiers        []int64
	CurrentValue int64
}

var transferTiers = []int64{tib, 10 * tib, 100 * tib, pib, 10 * pib}

// CategoriesFor builds the ordered category list for a user. The Distance
// category appears only when the record carries a distance value.
func CategoriesFor(user *models.UserStats) []Category {
	categories := []Category{
		{
			Title:        TitleKeystrokes,
			Tiers:        []int64{100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000},
			CurrentValue: user.Keys,
		},
		{
			Title:        TitleClicks,
			Tiers:        []int64{50_000, 500_000, 5_000_000, 50_000_000, 500_000_000},
			CurrentValue: user.Clicks,
		},
		{
			Title:        TitleDownload,
			Tiers:        transferTiers,
			CurrentValue: user.DownloadBytes(),
		},
		{
			Title:        TitleUpload,
			Tiers:        transferTiers,
			CurrentValue: user.UploadBytes(),
		},
		{
			Title:        TitleUptime,
			Tiers:        []int64{86_400, 604_800, 31_536_000, 315_360_000, 3_153_600_000},
			CurrentValue: user.UptimeSeconds,
		},
	}

	if user.DistanceMiles != nil {
		categories = append(categories, Category{
			Title:        TitleDistance,
			Tiers:        []int64{100, 500, 1_000, 5_000, 10_000, 50_000, 100_000, 1_000_000},
			CurrentValue: int64(math.Round(*user.DistanceMiles)),
		})
	}

	return categories
}

var validTierIDs = buildValidTierIDs()

func buildValidTierIDs() map[string]struct{} {
	distance := 0.0
	ids := make(map[string]struct{})
	for _, c := range CategoriesFor(&models.UserStats{DistanceMiles: &distance}) {
		for _, tier := range c.Tiers {
			ids[c.TierID(tier)] = struct{}{}
		}
	}
	return ids
}

// ValidTierID reports whether id names a tier from the fixed ladders.
func ValidTierID(id string) bool {
	_, ok := validTierIDs[id]
	return ok
}

// Achieved reports whether the current value has crossed the tier.
func (c Category) Achieved(tier int64) bool {
	return c.CurrentValue >= tier
}

// Progress is the capped fraction of the current value against a tier.
func (c Category) Progress(tier int64) float64 {
	if tier <= 0 {
		return 1.0
	}
	return math.Min(float64(c.CurrentValue)/float64(tier), 1.0)
}

// ProgressPercent is the rounded whole-number percentage against a tier.
func (c Category) ProgressPercent(tier int64) int {
	return int(math.Round(c.Progress(tier) * 100))
}

// NextTier is the first unachieved tier, falling back to the top tier when
// the whole ladder is complete.
func (c Category) NextTier() int64 {
	for _, tier := range c.Tiers {
		if c.CurrentValue < tier {
			return tier
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}

// Key is the lowercase category identifier used in milestone IDs.
func (c Category) Key() string {
	return strings.ToLower(c.Title)
}

// TierID builds the persisted unlock identifier for a tier.
func (c Category) TierID(tier int64) string {
	return fmt.Sprintf("%s_%d", c.Key(), tier)
}

// FormatValue dispatches to the tier-card formatter for this category:
// transfer categories use the compact byte table, uptime uses the terse
// decomposition, everything else is a grouped integer.
func (c Category) FormatValue(value int64) string {
	switch c.Title {
	case TitleDownload, TitleUpload:
		return format.BytesCompact(value)
	case TitleUptime:
		return format.UptimeTerse(value)
	default:
		return format.Integer(value)
	}
}
