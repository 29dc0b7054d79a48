package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/config"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/garmin"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/lock"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/metrics"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/notion"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/sleep"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass (the default command)",
	Long: `Fetch today's sleep summary from Garmin Connect and create the Notion
record for it unless the day is already stored or carries zero sleep.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	started := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging)
	logger.Info().Str("version", version).Msg("Starting sync")

	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	runTimeout, _ := time.ParseDuration(cfg.Sync.RunTimeout)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, runTimeout)
	defer cancelTimeout()

	// Initialize clients
	garminTimeout, _ := time.ParseDuration(cfg.Garmin.Timeout)
	source, err := garmin.New(garmin.Config{
		Email:    cfg.Garmin.Email,
		Password: cfg.Garmin.Password,
		SSOURL:   cfg.Garmin.SSOURL,
		APIURL:   cfg.Garmin.APIURL,
		Timeout:  garminTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create Garmin client: %w", err)
	}

	notionTimeout, _ := time.ParseDuration(cfg.Notion.Timeout)
	notionClient := notion.New(notion.Config{
		Token:   cfg.Notion.Token,
		BaseURL: cfg.Notion.BaseURL,
		Version: cfg.Notion.Version,
		Timeout: notionTimeout,
	}, logger)

	store := sleep.NewNotionStore(notionClient, cfg.Notion.DatabaseID, cfg.Notion.DateProperty)
	syncer := sleep.NewSyncer(source, store, sleep.Options{
		Location:      loc,
		SkipZeroSleep: cfg.Sync.SkipZeroSleep,
		Logger:        logger,
	})

	// Optional run lock; without Redis the run stays unguarded and
	// relies on single scheduled invocation.
	if cfg.Redis.Addr != "" {
		locker, err := lock.Open(lock.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to open run lock: %w", err)
		}
		defer func() { _ = locker.Close() }()

		date := syncer.Today()
		lockTTL, _ := time.ParseDuration(cfg.Redis.LockTTL)
		acquired, err := locker.TryLock(ctx, date, lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire run lock: %w", err)
		}
		if !acquired {
			logger.Warn().Str("date", date).Msg("Another sync run holds the lock, skipping")
			return nil
		}
		defer func() {
			if err := locker.Unlock(context.Background(), date); err != nil {
				logger.Error().Err(err).Msg("Failed to release run lock")
			}
		}()
	}

	if err := source.Login(ctx); err != nil {
		metrics.RunErrors.Inc()
		pushMetrics(cfg, logger, started)
		return fmt.Errorf("garmin login failed: %w", err)
	}

	outcome, err := syncer.Run(ctx)
	if err != nil {
		metrics.RunErrors.Inc()
		pushMetrics(cfg, logger, started)
		return err
	}

	if outcome == sleep.OutcomeCreated {
		metrics.RecordsCreated.Inc()
	} else {
		metrics.SkippedRuns.WithLabelValues(outcome.String()).Inc()
	}
	pushMetrics(cfg, logger, started)

	logger.Info().
		Stringer("outcome", outcome).
		Dur("duration", time.Since(started)).
		Msg("Sync finished")

	return nil
}

// pushMetrics sends run metrics to the Pushgateway when configured.
// Push failures are logged, never fatal; metrics must not break a sync.
func pushMetrics(cfg *config.Config, logger zerolog.Logger, started time.Time) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}

	metrics.RunDuration.Set(time.Since(started).Seconds())
	metrics.LastRunTimestamp.SetToCurrentTime()

	if err := metrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName); err != nil {
		logger.Error().Err(err).Msg("Failed to push metrics")
	}
}
