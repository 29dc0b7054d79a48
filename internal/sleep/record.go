package sleep

import (
	"fmt"
	"time"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/garmin"
)

// RecordIcon tags every created record
const RecordIcon = "😴"

// Record is one day's sleep entry in its stored shape: every display
// string and number already formatted, keyed by the local calendar date.
type Record struct {
	Title    string // "DD.MM.YYYY"
	Times    string // "HH:MM → HH:MM" local clock
	LongDate string // "YYYY-MM-DD", the equality-lookup key

	// UTC ISO start/end; empty when the source timestamp was absent
	FullStart string
	FullEnd   string

	TotalHours float64
	LightHours float64
	DeepHours  float64
	RemHours   float64
	AwakeHours float64

	TotalText string
	LightText string
	DeepText  string
	RemText   string
	AwakeText string

	RestingHR int
}

// TotalSleepSeconds sums the deep, light and REM stages. Awake time is
// deliberately excluded from the total; it is tracked as its own field.
func TotalSleepSeconds(dto *garmin.DailySleepDTO) int64 {
	if dto == nil {
		return 0
	}
	return dto.DeepSleepSeconds + dto.LightSleepSeconds + dto.RemSleepSeconds
}

// BuildRecord transforms a raw sleep summary into the stored record
// shape. The location is used only for the human-readable clock range;
// the machine timestamps stay UTC.
func BuildRecord(data *garmin.SleepData, loc *time.Location) *Record {
	dto := data.DailySleepDTO
	total := TotalSleepSeconds(dto)

	return &Record{
		Title: FormatDateTitle(dto.CalendarDate),
		Times: fmt.Sprintf("%s → %s",
			FormatClock(dto.SleepStartTimestampGMT, loc),
			FormatClock(dto.SleepEndTimestampGMT, loc)),
		LongDate:  dto.CalendarDate,
		FullStart: FormatTimestamp(dto.SleepStartTimestampGMT),
		FullEnd:   FormatTimestamp(dto.SleepEndTimestampGMT),

		TotalHours: RoundHours(total),
		LightHours: RoundHours(dto.LightSleepSeconds),
		DeepHours:  RoundHours(dto.DeepSleepSeconds),
		RemHours:   RoundHours(dto.RemSleepSeconds),
		AwakeHours: RoundHours(dto.AwakeSleepSeconds),

		TotalText: FormatDuration(total),
		LightText: FormatDuration(dto.LightSleepSeconds),
		DeepText:  FormatDuration(dto.DeepSleepSeconds),
		RemText:   FormatDuration(dto.RemSleepSeconds),
		AwakeText: FormatDuration(dto.AwakeSleepSeconds),

		RestingHR: data.RestingHeartRate,
	}
}
