package garmin

// SleepData is the wellness-service response for one day of sleep.
// Only the fields this tool consumes are mapped.
type SleepData struct {
	DailySleepDTO    *DailySleepDTO `json:"dailySleepDTO"`
	RestingHeartRate int            `json:"restingHeartRate"`
}

// DailySleepDTO carries the per-day sleep summary. Timestamps are epoch
// milliseconds in UTC; stage durations are seconds. A day with no tracked
// sleep comes back with all durations at zero.
type DailySleepDTO struct {
	CalendarDate           string `json:"calendarDate"`
	DeepSleepSeconds       int64  `json:"deepSleepSeconds"`
	LightSleepSeconds      int64  `json:"lightSleepSeconds"`
	RemSleepSeconds        int64  `json:"remSleepSeconds"`
	AwakeSleepSeconds      int64  `json:"awakeSleepSeconds"`
	SleepStartTimestampGMT int64  `json:"sleepStartTimestampGMT"`
	SleepEndTimestampGMT   int64  `json:"sleepEndTimestampGMT"`
}

// socialProfile is the subset of the user profile needed to address
// the wellness endpoints.
type socialProfile struct {
	DisplayName string `json:"displayName"`
}
