package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	// Run outcome metrics
	RecordsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "garmin_to_notion_records_created_total",
			Help: "Sleep records created in Notion",
		},
	)

	SkippedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "garmin_to_notion_skipped_runs_total",
			Help: "Runs that ended without a write",
		},
		[]string{"reason"},
	)

	RunErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "garmin_to_notion_run_errors_total",
			Help: "Runs that failed with an error",
		},
	)

	RunDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "garmin_to_notion_run_duration_seconds",
			Help: "Wall-clock duration of the last sync run",
		},
	)

	LastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "garmin_to_notion_last_run_timestamp_seconds",
			Help: "Unix time of the last completed sync run",
		},
	)
)

// registry holds this job's collectors, kept separate from the default
// registry so a push carries no Go runtime noise.
var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		RecordsCreated,
		SkippedRuns,
		RunErrors,
		RunDuration,
		LastRunTimestamp,
	)
}

// Push sends the collected metrics to a Pushgateway. This is a one-shot
// batch job, so push replaces the usual scrape endpoint.
func Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(registry).Push()
}
