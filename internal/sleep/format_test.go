package sleep

import (
	"testing"
	"time"
)

func parisLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("Failed to load Europe/Paris: %v", err)
	}
	return loc
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"zero", 0, "0h 0m"},
		{"negative treated as zero", -120, "0h 0m"},
		{"one hour one minute truncated", 3661, "1h 1m"},
		{"just under a minute", 59, "0h 0m"},
		{"typical night", 26220, "7h 17m"},
		{"exactly eight hours", 28800, "8h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	// 2024-01-15 22:30:45 UTC
	ms := time.Date(2024, 1, 15, 22, 30, 45, 0, time.UTC).UnixMilli()

	if got, want := FormatTimestamp(ms), "2024-01-15T22:30:45.000Z"; got != want {
		t.Errorf("FormatTimestamp(%d) = %q, want %q", ms, got, want)
	}

	// Non-zero milliseconds are truncated to the literal .000 suffix.
	if got, want := FormatTimestamp(ms+789), "2024-01-15T22:30:45.000Z"; got != want {
		t.Errorf("FormatTimestamp(%d) = %q, want %q", ms+789, got, want)
	}
}

func TestFormatTimestamp_Absent(t *testing.T) {
	if got := FormatTimestamp(0); got != "" {
		t.Errorf("Expected absent value for zero timestamp, got %q", got)
	}
}

func TestFormatClock_Winter(t *testing.T) {
	loc := parisLocation(t)

	// 23:30 UTC in January crosses midnight into CET (+1).
	ms := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC).UnixMilli()
	if got, want := FormatClock(ms, loc), "00:30"; got != want {
		t.Errorf("FormatClock winter = %q, want %q", got, want)
	}
}

func TestFormatClock_Summer(t *testing.T) {
	loc := parisLocation(t)

	// 22:30 UTC in July crosses midnight into CEST (+2).
	ms := time.Date(2024, 7, 1, 22, 30, 0, 0, time.UTC).UnixMilli()
	if got, want := FormatClock(ms, loc), "00:30"; got != want {
		t.Errorf("FormatClock summer = %q, want %q", got, want)
	}
}

func TestFormatClock_Absent(t *testing.T) {
	if got := FormatClock(0, parisLocation(t)); got != "Unknown" {
		t.Errorf("Expected \"Unknown\" for zero timestamp, got %q", got)
	}
}

func TestFormatDateTitle(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"valid", "2026-03-10", "10.03.2026"},
		{"empty", "", "Unknown"},
		{"garbage", "not-a-date", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTitle(tt.date); got != tt.want {
				t.Errorf("FormatDateTitle(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		seconds int64
		want    float64
	}{
		{0, 0},
		{9000, 2.5},
		{3661, 1.0},
		{5400, 1.5},
		{26220, 7.3},
	}

	for _, tt := range tests {
		if got := RoundHours(tt.seconds); got != tt.want {
			t.Errorf("RoundHours(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}
