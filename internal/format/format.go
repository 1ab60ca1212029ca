// Package format converts raw statistic values into the human-readable
// strings shared by every consuming surface. All functions are pure and
// fall back to a safe string instead of failing.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const milesToKm = 1.60934

// Integer renders n with comma thousands grouping, independent of the
// process locale.
func Integer(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

var binaryUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// Bytes scales by powers of 1024 using binary-prefix labels. Used by the
// detail and watch surfaces.
func Bytes(bytes int64) string {
	value := float64(bytes)
	index := 0
	for value >= 1024 && index < len(binaryUnits)-1 {
		value /= 1024
		index++
	}
	return fmt.Sprintf("%.2f %s", value, binaryUnits[index])
}

var compactThresholds = []struct {
	threshold float64
	unit      string
}{
	{math.Pow(1024, 5), "PB"},
	{math.Pow(1024, 4), "TB"},
	{math.Pow(1024, 3), "GB"},
	{math.Pow(1024, 2), "MB"},
	{1024, "KB"},
}

// BytesCompact is the second byte-formatting table in use: decimal-looking
// unit labels over the same 1024 divisor. The two tables render different
// unit text for the same value and are kept separate on purpose.
func BytesCompact(bytes int64) string {
	value := float64(bytes)
	for _, t := range compactThresholds {
		if value >= t.threshold {
			return fmt.Sprintf("%.2f %s", value/t.threshold, t.unit)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// ShortBytes is the one-decimal widget form.
func ShortBytes(bytes int64) string {
	value := float64(bytes)
	switch {
	case value >= math.Pow(1024, 4):
		return fmt.Sprintf("%.1f TB", value/math.Pow(1024, 4))
	case value >= math.Pow(1024, 3):
		return fmt.Sprintf("%.1f GB", value/math.Pow(1024, 3))
	case value >= math.Pow(1024, 2):
		return fmt.Sprintf("%.1f MB", value/math.Pow(1024, 2))
	case value >= 1024:
		return fmt.Sprintf("%.1f KB", value/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 7 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// Uptime decomposes seconds into years (365-day), weeks, days, hours,
// minutes and seconds, emitting only non-zero components. Zero input
// yields "0s".
func Uptime(seconds int64) string {
	remaining := seconds

	years := remaining / secondsPerYear
	remaining %= secondsPerYear
	weeks := remaining / secondsPerWeek
	remaining %= secondsPerWeek
	days := remaining / secondsPerDay
	remaining %= secondsPerDay
	hours := remaining / secondsPerHour
	remaining %= secondsPerHour
	minutes := remaining / secondsPerMinute
	secs := remaining % secondsPerMinute

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", years))
	}
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// UptimeTerse is the milestone-card composition rule: no week bucket and no
// zero fallback, so zero input yields an empty string. Both rules are in use
// and render different output for the same value.
func UptimeTerse(seconds int64) string {
	years := seconds / secondsPerYear
	days := (seconds % secondsPerYear) / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", years))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

// Distance renders a dual-unit miles/kilometers string.
func Distance(miles float64) string {
	return fmt.Sprintf("%.2f mi / %.2f km", miles, miles*milesToKm)
}

// ISODate renders an RFC3339 timestamp (with fractional seconds) as a
// medium date plus short time. Unparseable input is returned unchanged.
func ISODate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006 15:04")
}

// ShortNumber is the compact suffix form used on small surfaces.
func ShortNumber(n int64) string {
	value := float64(n)
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.1fk", value/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Rank groups a numeric server rank for display and passes non-numeric
// placeholders ("-", "N/A") through verbatim.
func Rank(value string) string {
	if n, err := cast.ToInt64E(value); err == nil {
		return Integer(n)
	}
	return value
}
