package sleep

import (
	"testing"
	"time"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/garmin"
)

func sampleSleepData() *garmin.SleepData {
	// 2026-03-10, 23:15 UTC → 06:40 UTC the next morning.
	start := time.Date(2026, 3, 9, 23, 15, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2026, 3, 10, 6, 40, 0, 0, time.UTC).UnixMilli()

	return &garmin.SleepData{
		DailySleepDTO: &garmin.DailySleepDTO{
			CalendarDate:           "2026-03-10",
			DeepSleepSeconds:       3600,
			LightSleepSeconds:      3600,
			RemSleepSeconds:        1800,
			AwakeSleepSeconds:      7200,
			SleepStartTimestampGMT: start,
			SleepEndTimestampGMT:   end,
		},
		RestingHeartRate: 52,
	}
}

func TestTotalSleepSeconds_ExcludesAwake(t *testing.T) {
	data := sampleSleepData()

	if got := TotalSleepSeconds(data.DailySleepDTO); got != 9000 {
		t.Errorf("Expected total 9000s (awake excluded), got %d", got)
	}
}

func TestTotalSleepSeconds_NilDTO(t *testing.T) {
	if got := TotalSleepSeconds(nil); got != 0 {
		t.Errorf("Expected 0 for nil DTO, got %d", got)
	}
}

func TestBuildRecord(t *testing.T) {
	loc := parisLocation(t)
	rec := BuildRecord(sampleSleepData(), loc)

	if rec.Title != "10.03.2026" {
		t.Errorf("Title = %q, want 10.03.2026", rec.Title)
	}
	if rec.LongDate != "2026-03-10" {
		t.Errorf("LongDate = %q, want 2026-03-10", rec.LongDate)
	}
	// March is still CET (+1) in Paris.
	if rec.Times != "00:15 → 07:40" {
		t.Errorf("Times = %q, want \"00:15 → 07:40\"", rec.Times)
	}
	if rec.FullStart != "2026-03-09T23:15:00.000Z" {
		t.Errorf("FullStart = %q", rec.FullStart)
	}
	if rec.FullEnd != "2026-03-10T06:40:00.000Z" {
		t.Errorf("FullEnd = %q", rec.FullEnd)
	}

	// total 9000s = 2.5h, not 4.5h: awake time stays out of the total.
	if rec.TotalHours != 2.5 {
		t.Errorf("TotalHours = %v, want 2.5", rec.TotalHours)
	}
	if rec.AwakeHours != 2.0 {
		t.Errorf("AwakeHours = %v, want 2.0", rec.AwakeHours)
	}
	if rec.DeepHours != 1.0 || rec.LightHours != 1.0 || rec.RemHours != 0.5 {
		t.Errorf("Stage hours = %v/%v/%v, want 1.0/1.0/0.5",
			rec.DeepHours, rec.LightHours, rec.RemHours)
	}

	if rec.TotalText != "2h 30m" {
		t.Errorf("TotalText = %q, want \"2h 30m\"", rec.TotalText)
	}
	if rec.AwakeText != "2h 0m" {
		t.Errorf("AwakeText = %q, want \"2h 0m\"", rec.AwakeText)
	}

	if rec.RestingHR != 52 {
		t.Errorf("RestingHR = %d, want 52", rec.RestingHR)
	}
}

func TestBuildRecord_MissingTimestamps(t *testing.T) {
	data := sampleSleepData()
	data.DailySleepDTO.SleepStartTimestampGMT = 0
	data.DailySleepDTO.SleepEndTimestampGMT = 0

	rec := BuildRecord(data, parisLocation(t))

	if rec.FullStart != "" || rec.FullEnd != "" {
		t.Errorf("Expected absent machine timestamps, got %q / %q", rec.FullStart, rec.FullEnd)
	}
	if rec.Times != "Unknown → Unknown" {
		t.Errorf("Times = %q, want \"Unknown → Unknown\"", rec.Times)
	}
}
