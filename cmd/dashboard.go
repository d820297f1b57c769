package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/config"
	"github.com/FransDroid/sentiment-analysis-project/internal/logging"
	"github.com/FransDroid/sentiment-analysis-project/internal/snapshot"
	"github.com/FransDroid/sentiment-analysis-project/internal/tui"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDays > 0 {
		cfg.TrendDays = flagDays
	}
	if flagPlatform != "" {
		cfg.Platform = flagPlatform
	}

	logger, closeLog, err := logging.Setup(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	store, err := snapshot.Open(config.SnapshotPath())
	if err != nil {
		// The dashboard works without persistence; it just loses the
		// cross-run last-good state.
		logger.Warn("snapshot store unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	client := api.NewClient(cfg.BaseURL, cfg.RequestTimeoutDuration())

	return tui.Run(tui.RunOpts{
		Cfg:    cfg,
		Client: client,
		Store:  store,
		Logger: logger,
	})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	return cfg, nil
}
