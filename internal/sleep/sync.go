package sleep

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/garmin"
)

// Source fetches one day's raw sleep summary, keyed by the local
// calendar date ("YYYY-MM-DD").
type Source interface {
	DailySleep(ctx context.Context, date string) (*garmin.SleepData, error)
}

// Store holds sleep records. Exists is the sole duplicate-prevention
// mechanism: a point-in-time check with no locking, so the
// check-then-create sequence is only safe for a single invocation.
type Store interface {
	Exists(ctx context.Context, date string) (bool, error)
	Create(ctx context.Context, rec *Record) error
}

// Outcome reports what a sync run did
type Outcome int

const (
	// OutcomeCreated means a new record was written
	OutcomeCreated Outcome = iota
	// OutcomeNoData means the source had no summary for the day
	OutcomeNoData
	// OutcomeExists means a record for the day was already stored
	OutcomeExists
	// OutcomeZeroSleep means the summary had no tracked sleep and the
	// skip-zero guard held the write back
	OutcomeZeroSleep
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeNoData:
		return "no_data"
	case OutcomeExists:
		return "exists"
	case OutcomeZeroSleep:
		return "zero_sleep"
	default:
		return "unknown"
	}
}

// Options configures a Syncer
type Options struct {
	// Location is the timezone that defines "today" and the readable
	// clock times. The source indexes sleep by local calendar date, so
	// the wrong zone fetches the wrong day around midnight and DST
	// changes.
	Location *time.Location

	// SkipZeroSleep holds back record creation when the summary has no
	// tracked sleep (device not worn). Defaults to true in NewSyncer.
	SkipZeroSleep bool

	Clock  Clock
	Logger zerolog.Logger
}

// Syncer runs the fetch → transform → check → create pipeline once
type Syncer struct {
	source Source
	store  Store
	opts   Options
}

// NewSyncer creates a Syncer. A nil Clock means system time; a nil
// Location means UTC.
func NewSyncer(source Source, store Store, opts Options) *Syncer {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Syncer{source: source, store: store, opts: opts}
}

// Today returns the current calendar date in the configured location
func (s *Syncer) Today() string {
	return s.opts.Clock.Now().In(s.opts.Location).Format("2006-01-02")
}

// Run executes one sync pass for "today". It never updates or deletes:
// an existing record for the date makes the run a no-op.
func (s *Syncer) Run(ctx context.Context) (Outcome, error) {
	return s.RunDate(ctx, s.Today())
}

// RunDate executes one sync pass for the given calendar date
func (s *Syncer) RunDate(ctx context.Context, date string) (Outcome, error) {
	logger := s.opts.Logger

	data, err := s.source.DailySleep(ctx, date)
	if err != nil {
		return OutcomeNoData, fmt.Errorf("failed to fetch sleep data: %w", err)
	}
	if data == nil || data.DailySleepDTO == nil || data.DailySleepDTO.CalendarDate == "" {
		logger.Debug().Str("date", date).Msg("No sleep summary for date")
		return OutcomeNoData, nil
	}

	// The source reports its own calendar date; trust it over the one
	// we asked for.
	sleepDate := data.DailySleepDTO.CalendarDate

	exists, err := s.store.Exists(ctx, sleepDate)
	if err != nil {
		return OutcomeNoData, fmt.Errorf("existence check failed: %w", err)
	}
	if exists {
		logger.Debug().Str("date", sleepDate).Msg("Sleep record already exists")
		return OutcomeExists, nil
	}

	total := TotalSleepSeconds(data.DailySleepDTO)
	if s.opts.SkipZeroSleep && total == 0 {
		logger.Info().Str("date", sleepDate).Msg("Skipping sleep data as total sleep is 0")
		return OutcomeZeroSleep, nil
	}

	rec := BuildRecord(data, s.opts.Location)
	if err := s.store.Create(ctx, rec); err != nil {
		return OutcomeNoData, fmt.Errorf("failed to create sleep record: %w", err)
	}

	logger.Info().
		Str("date", sleepDate).
		Float64("total_hours", rec.TotalHours).
		Msg("Created sleep entry")

	return OutcomeCreated, nil
}
