package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/config"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/garmin"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/notion"
	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/sleep"
)

var checkDate string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch and preview the record without writing",
	Long: `Check fetches the sleep summary, runs the full transformation and the
existence check, and prints what sync would do - without creating
anything in Notion.`,
	Example: `  garmin-to-notion check
  garmin-to-notion check --date 2026-03-10`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkDate, "date", "", "Calendar date to inspect (YYYY-MM-DD) - defaults to today")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loc, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	// Create a quiet logger for check mode
	logger := zerolog.New(os.Stderr).Level(zerolog.ErrorLevel).With().Timestamp().Logger()

	runTimeout, _ := time.ParseDuration(cfg.Sync.RunTimeout)
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

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

	if err := source.Login(ctx); err != nil {
		return fmt.Errorf("garmin login failed: %w", err)
	}

	date := checkDate
	if date == "" {
		date = time.Now().In(loc).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: %w", date, err)
	}

	data, err := source.DailySleep(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to fetch sleep data: %w", err)
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	_, _ = bold.Printf("Sleep summary for %s\n\n", date)

	if data == nil || data.DailySleepDTO == nil || data.DailySleepDTO.CalendarDate == "" {
		_, _ = yellow.Println("No sleep summary available - sync would be a no-op")
		return nil
	}

	rec := sleep.BuildRecord(data, loc)

	fmt.Printf("  %-16s %s\n", "Date", rec.Title)
	fmt.Printf("  %-16s %s\n", "Times", rec.Times)
	fmt.Printf("  %-16s %s\n", "Long Date", rec.LongDate)
	if rec.FullStart != "" {
		fmt.Printf("  %-16s %s → %s\n", "Full Date/Time", rec.FullStart, rec.FullEnd)
	}
	fmt.Printf("  %-16s %.1f h (%s)\n", "Total Sleep", rec.TotalHours, rec.TotalText)
	fmt.Printf("  %-16s %.1f h (%s)\n", "Light Sleep", rec.LightHours, rec.LightText)
	fmt.Printf("  %-16s %.1f h (%s)\n", "Deep Sleep", rec.DeepHours, rec.DeepText)
	fmt.Printf("  %-16s %.1f h (%s)\n", "REM Sleep", rec.RemHours, rec.RemText)
	fmt.Printf("  %-16s %.1f h (%s)\n", "Awake Time", rec.AwakeHours, rec.AwakeText)
	fmt.Printf("  %-16s %d bpm\n\n", "Resting HR", rec.RestingHR)

	// Same existence check the sync performs, read-only.
	notionTimeout, _ := time.ParseDuration(cfg.Notion.Timeout)
	notionClient := notion.New(notion.Config{
		Token:   cfg.Notion.Token,
		BaseURL: cfg.Notion.BaseURL,
		Version: cfg.Notion.Version,
		Timeout: notionTimeout,
	}, logger)
	store := sleep.NewNotionStore(notionClient, cfg.Notion.DatabaseID, cfg.Notion.DateProperty)

	exists, err := store.Exists(ctx, rec.LongDate)
	if err != nil {
		return fmt.Errorf("existence check failed: %w", err)
	}

	total := sleep.TotalSleepSeconds(data.DailySleepDTO)
	switch {
	case exists:
		_, _ = yellow.Println("Record already exists - sync would be a no-op")
	case cfg.Sync.SkipZeroSleep && total == 0:
		_, _ = yellow.Println("Total sleep is 0 - sync would skip this day")
	default:
		_, _ = green.Println("Sync would create this record")
	}

	return nil
}
