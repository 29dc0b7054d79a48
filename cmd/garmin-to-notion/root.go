package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "garmin-to-notion",
	Short: "garmin-to-notion - sync one day of Garmin sleep data into a Notion database",
	Long: `garmin-to-notion fetches today's sleep summary from Garmin Connect and,
if the day is not already recorded, inserts it as a page in a Notion
database. Duplicate prevention is a single existence check on the date;
the job is meant to run once per day from a scheduler.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to sync command when no subcommand is provided
		return runSync(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to optional configuration file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
