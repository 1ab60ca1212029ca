package milestones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsetrack/internal/models"
)

func testUser(keys, clicks, downloadMB, uploadMB, uptime int64, miles *float64) *models.UserStats {
	return &models.UserStats{
		AccountName:   "tester",
		Keys:          keys,
		Clicks:        clicks,
		DownloadMB:    downloadMB,
		UploadMB:      uploadMB,
		UptimeSeconds: uptime,
		DistanceMiles: miles,
	}
}

func TestCategoriesFor_WithoutDistance(t *testing.T) {
	cats := CategoriesFor(testUser(1, 1, 1, 1, 1, nil))

	require.Len(t, cats, 5)
	assert.Equal(t, TitleKeystrokes, cats[0].Title)
	assert.Equal(t, TitleClicks, cats[1].Title)
	assert.Equal(t, TitleDownload, cats[2].Title)
	assert.Equal(t, TitleUpload, cats[3].Title)
	assert.Equal(t, TitleUptime, cats[4].Title)
}

func TestCategoriesFor_WithDistance(t *testing.T) {
	miles := 123.6
	cats := CategoriesFor(testUser(1, 1, 1, 1, 1, &miles))

	require.Len(t, cats, 6)
	assert.Equal(t, TitleDistance, cats[5].Title)
	// Rounded to nearest integer mile.
	assert.Equal(t, int64(124), cats[5].CurrentValue)
}

func TestCategoriesFor_TiersAscending(t *testing.T) {
	for _, c := range CategoriesFor(models.Placeholder()) {
		for i := 1; i < len(c.Tiers); i++ {
			assert.Greater(t, c.Tiers[i], c.Tiers[i-1], "%s tier %d", c.Title, i)
		}
	}
}

func TestCategoriesFor_DownloadConvertsToBytes(t *testing.T) {
	cats := CategoriesFor(testUser(0, 0, 2048, 0, 0, nil))
	download := cats[2]

	assert.Equal(t, int64(2147483648), download.CurrentValue)
	assert.False(t, download.Achieved(download.Tiers[0]))
	assert.Equal(t, int64(1099511627776), download.NextTier())
	assert.Equal(t, 0, download.ProgressPercent(download.NextTier()))
	assert.InDelta(t, 0.00195, download.Progress(download.Tiers[0]), 0.0001)
}

func TestCategory_KeystrokesProgress(t *testing.T) {
	cats := CategoriesFor(testUser(150_000, 0, 0, 0, 0, nil))
	keystrokes := cats[0]

	assert.True(t, keystrokes.Achieved(100_000))
	assert.False(t, keystrokes.Achieved(1_000_000))
	assert.Equal(t, int64(1_000_000), keystrokes.NextTier())
	assert.Equal(t, 15, keystrokes.ProgressPercent(keystrokes.NextTier()))
}

func TestCategory_AchievedImpliesLowerTiers(t *testing.T) {
	cats := CategoriesFor(testUser(12_345_678, 0, 0, 0, 0, nil))
	keystrokes := cats[0]

	for i, tier := range keystrokes.Tiers {
		if keystrokes.Achieved(tier) && i > 0 {
			assert.True(t, keystrokes.Achieved(keystrokes.Tiers[i-1]))
		}
	}
}

func TestCategory_NextTierFallsBackToLast(t *testing.T) {
	cats := CategoriesFor(testUser(2_000_000_000, 0, 0, 0, 0, nil))
	keystrokes := cats[0]

	assert.Equal(t, int64(1_000_000_000), keystrokes.NextTier())
	assert.Equal(t, 100, keystrokes.ProgressPercent(keystrokes.NextTier()))
}

func TestCategory_ProgressCapsAtOne(t *testing.T) {
	cats := CategoriesFor(testUser(500_000, 0, 0, 0, 0, nil))
	assert.Equal(t, 1.0, cats[0].Progress(100_000))
}

func TestCategory_TierID(t *testing.T) {
	cats := CategoriesFor(testUser(0, 0, 0, 0, 0, nil))
	assert.Equal(t, "keystrokes_100000", cats[0].TierID(100_000))
	assert.Equal(t, "download_1099511627776", cats[2].TierID(1099511627776))
}

func TestValidTierID(t *testing.T) {
	assert.True(t, ValidTierID("keystrokes_100000"))
	assert.True(t, ValidTierID("uptime_3153600000"))
	assert.True(t, ValidTierID("distance_1000000"))
	assert.False(t, ValidTierID("keystrokes_123"))
	assert.False(t, ValidTierID("scrolls_100"))
	assert.False(t, ValidTierID(""))
}

func TestCategory_FormatValueDispatch(t *testing.T) {
	cats := CategoriesFor(testUser(0, 0, 0, 0, 0, nil))

	assert.Equal(t, "100,000", cats[0].FormatValue(100_000))
	assert.Equal(t, "1.00 TB", cats[2].FormatValue(1099511627776))
	assert.Equal(t, "1d", cats[4].FormatValue(86_400))
}

func TestCategory_FlavorText(t *testing.T) {
	cats := CategoriesFor(testUser(0, 0, 0, 0, 0, nil))

	assert.Equal(t, "Typed like 100 DIN A4 pages", cats[0].FlavorText(100_000))
	assert.Equal(t, "", cats[0].FlavorText(12345))
}

func TestCategory_Summary(t *testing.T) {
	cats := CategoriesFor(testUser(150_000, 0, 0, 0, 0, nil))
	summary := cats[0].Summary()

	assert.Equal(t, TitleKeystrokes, summary.Title)
	assert.Equal(t, "150,000", summary.CurrentDisplay)
	assert.Equal(t, int64(1_000_000), summary.NextTier)
	assert.Equal(t, "1,000,000", summary.NextDisplay)
	assert.Equal(t, 15, summary.ProgressPercent)
}

func TestCategory_TierCards(t *testing.T) {
	cats := CategoriesFor(testUser(150_000, 0, 0, 0, 0, nil))
	cards := cats[0].TierCards()

	require.Len(t, cards, 5)
	assert.True(t, cards[0].Achieved)
	assert.Equal(t, "Typed like 100 DIN A4 pages", cards[0].Flavor)
	assert.False(t, cards[1].Achieved)
	assert.Empty(t, cards[1].Flavor)
	assert.Equal(t, "keystrokes_100000", cards[0].ID)
}
