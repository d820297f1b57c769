package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagBaseURL  string
	flagDays     int
	flagPlatform string
)

var rootCmd = &cobra.Command{
	Use:   "sentidash",
	Short: "Live sentiment telemetry dashboard",
	Long:  "sentidash polls a sentiment analysis backend and renders its classification statistics as continuously refreshing terminal charts.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override backend base URL")
	rootCmd.Flags().IntVar(&flagDays, "days", 0, "trend lookback in days (overrides config)")
	rootCmd.Flags().StringVar(&flagPlatform, "platform", "", "restrict summary to one platform")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sentidash %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
