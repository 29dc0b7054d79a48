package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/config"
)

var validateDump bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  `Validate the environment and optional configuration file without touching either service.`,
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateDump, "dump", false, "Dump the effective configuration with secrets redacted")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration validation failed: %v\n", err)
		return err
	}

	if err := cfg.Validate(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		_, _ = red.Fprintf(os.Stderr, "❌ %v\n", err)
		return err
	}

	_, _ = fmt.Fprintln(os.Stdout, "✅ Configuration is valid")

	if validateDump {
		dumpConfig(cfg)
	}

	return nil
}

// dumpConfig prints the effective configuration with secrets redacted
func dumpConfig(cfg *config.Config) {
	bold := color.New(color.Bold)

	_, _ = bold.Println("\ngarmin:")
	fmt.Printf("  email:            %s\n", cfg.Garmin.Email)
	fmt.Printf("  password:         %s\n", redact(cfg.Garmin.Password))
	fmt.Printf("  sso_url:          %s\n", cfg.Garmin.SSOURL)
	fmt.Printf("  api_url:          %s\n", cfg.Garmin.APIURL)
	fmt.Printf("  timeout:          %s\n", cfg.Garmin.Timeout)

	_, _ = bold.Println("notion:")
	fmt.Printf("  token:            %s\n", redact(cfg.Notion.Token))
	fmt.Printf("  database_id:      %s\n", cfg.Notion.DatabaseID)
	fmt.Printf("  base_url:         %s\n", cfg.Notion.BaseURL)
	fmt.Printf("  version:          %s\n", cfg.Notion.Version)
	fmt.Printf("  date_property:    %s\n", cfg.Notion.DateProperty)
	fmt.Printf("  timeout:          %s\n", cfg.Notion.Timeout)

	_, _ = bold.Println("sync:")
	fmt.Printf("  timezone:         %s\n", cfg.Sync.Timezone)
	fmt.Printf("  skip_zero_sleep:  %t\n", cfg.Sync.SkipZeroSleep)
	fmt.Printf("  run_timeout:      %s\n", cfg.Sync.RunTimeout)

	_, _ = bold.Println("redis:")
	if cfg.Redis.Addr == "" {
		fmt.Println("  (run lock disabled)")
	} else {
		fmt.Printf("  addr:             %s\n", cfg.Redis.Addr)
		fmt.Printf("  db:               %d\n", cfg.Redis.DB)
		fmt.Printf("  lock_ttl:         %s\n", cfg.Redis.LockTTL)
	}

	_, _ = bold.Println("metrics:")
	if cfg.Metrics.PushgatewayURL == "" {
		fmt.Println("  (push disabled)")
	} else {
		fmt.Printf("  pushgateway_url:  %s\n", cfg.Metrics.PushgatewayURL)
		fmt.Printf("  job_name:         %s\n", cfg.Metrics.JobName)
	}

	_, _ = bold.Println("logging:")
	fmt.Printf("  level:            %s\n", cfg.Logging.Level)
	fmt.Printf("  format:           %s\n", cfg.Logging.Format)
}

// redact hides a secret while showing whether it is set at all
func redact(s string) string {
	if s == "" {
		return "(not set)"
	}
	return "********"
}
