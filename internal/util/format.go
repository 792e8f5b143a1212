package util

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Helper functions
func FormatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	} else {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}

// Milliseconds per unit, largest first.
var durationUnits = []struct {
	millis float64
	abbrev string
	full   string
}{
	{604800000, "wk", "week"},
	{86400000, "d", "day"},
	{3600000, "hr", "hour"},
	{60000, "min", "minute"},
	{1000, "s", "second"},
	{1, "ms", "millisecond"},
}

// FormatDurationMs renders a millisecond duration in the largest unit
// it fills, e.g. FormatDurationMs(1500, 2, true) == "1.50s".
func FormatDurationMs(ms float64, precision int, abbreviate bool) string {
	abs := math.Abs(ms)

	unit := durationUnits[len(durationUnits)-1]
	for _, u := range durationUnits {
		if abs >= u.millis {
			unit = u
			break
		}
	}

	value := ms / unit.millis
	formatted := strconv.FormatFloat(value, 'f', precision, 64)
	if abbreviate {
		return formatted + unit.abbrev
	}
	if value == 1 {
		return formatted + " " + unit.full
	}
	return formatted + " " + unit.full + "s"
}

// FormatBytes renders a byte size with binary units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}

// Pluralize picks the singular or plural noun for a count and prefixes
// the count itself.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Truncate shortens text to the given display width, accounting for
// wide runes, with a trailing ellipsis.
func Truncate(text string, width int) string {
	return runewidth.Truncate(text, width, "…")
}
