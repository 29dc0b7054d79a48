package sleep

import (
	"fmt"
	"math"
	"time"
)

// The three formatters deliberately disagree about missing input: a
// missing duration reads as zero, a missing machine timestamp yields an
// absent value, and a missing clock time yields the literal "Unknown".
// Each sentinel matches where the value ends up (a number, an optional
// field, a display string); unifying them would change stored output.

// FormatDuration renders seconds as "{h}h {m}m". Negative or zero input
// renders as "0h 0m"; minutes are truncated, never rounded.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := seconds / 60
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatTimestamp renders epoch milliseconds (UTC) as an ISO 8601
// string with a literal ".000Z" suffix, the machine-sortable form the
// records store. A zero timestamp yields "" (absent).
func FormatTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05") + ".000Z"
}

// FormatClock renders epoch milliseconds (UTC) as a local wall-clock
// "HH:MM" in the given location. A zero timestamp yields "Unknown",
// since this value is embedded directly into a display string.
func FormatClock(ms int64, loc *time.Location) string {
	if ms == 0 {
		return "Unknown"
	}
	return time.UnixMilli(ms).In(loc).Format("15:04")
}

// FormatDateTitle rewrites a "YYYY-MM-DD" calendar date as the
// "DD.MM.YYYY" display title. Empty or malformed input yields "Unknown".
func FormatDateTitle(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "Unknown"
	}
	return t.Format("02.01.2006")
}

// RoundHours converts seconds to hours rounded to one decimal
func RoundHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*10) / 10
}
