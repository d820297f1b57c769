package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/FransDroid/sentiment-analysis-project/internal/api"
	"github.com/FransDroid/sentiment-analysis-project/internal/trend"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch the current sentiment statistics once and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := api.NewClient(cfg.BaseURL, cfg.RequestTimeoutDuration())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			summary     api.Summary
			points      []trend.Point
			overview    api.Overview
			summaryErr  error
			trendErr    error
			overviewErr error
		)

		// Failures stay per-request so one broken endpoint doesn't hide
		// the others.
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			summary, summaryErr = client.Summary(gctx, cfg.Platform, cfg.GetSummaryHours())
			return nil
		})
		g.Go(func() error {
			var samples []api.RawSample
			samples, trendErr = client.Trends(gctx, cfg.GetTrendDays())
			if trendErr == nil {
				points = trend.Aggregate(samples)
			}
			return nil
		})
		g.Go(func() error {
			overview, overviewErr = client.Overview(gctx)
			return nil
		})
		g.Wait()

		if summaryErr != nil {
			color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ summary unavailable: %v\n", summaryErr)
		} else {
			printSummary(summary, cfg.GetSummaryHours())
		}

		if trendErr != nil {
			color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ trends unavailable: %v\n", trendErr)
		} else {
			printTrend(points, cfg.GetTrendDays())
		}

		if overviewErr != nil {
			color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ overview unavailable: %v\n", overviewErr)
		} else {
			printOverview(overview)
		}

		if summaryErr != nil && trendErr != nil && overviewErr != nil {
			return fmt.Errorf("backend unreachable at %s", cfg.BaseURL)
		}
		return nil
	},
}

func printSummary(s api.Summary, hours int) {
	fmt.Printf("Overall (%dh): %s · %s · %s · %d posts\n",
		hours,
		color.GreenString("positive %.1f%%", s.Positive),
		color.YellowString("neutral %.1f%%", s.Neutral),
		color.RedString("negative %.1f%%", s.Negative),
		s.Total,
	)
}

func printTrend(points []trend.Point, days int) {
	if len(points) == 0 {
		fmt.Printf("Trend (%dd): no data\n", days)
		return
	}
	const layout = "Jan 2 15:04"
	fmt.Printf("Trend (%dd): %d points from %s to %s, peak %d posts/hour\n",
		days, len(points),
		points[0].Time.Format(layout),
		points[len(points)-1].Time.Format(layout),
		trend.MaxCount(points),
	)
}

func printOverview(o api.Overview) {
	if len(o.Platforms) == 0 {
		fmt.Println("No platform statistics available.")
		return
	}

	names := make([]string, 0, len(o.Platforms))
	for name := range o.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header([]string{"platform", "positive", "neutral", "negative", "total"})
	for _, name := range names {
		s := o.Platforms[name]
		table.Append([]string{
			name,
			fmt.Sprintf("%.1f%%", s.Positive),
			fmt.Sprintf("%.1f%%", s.Neutral),
			fmt.Sprintf("%.1f%%", s.Negative),
			fmt.Sprintf("%d", s.Total),
		})
	}
	table.Render()
}
