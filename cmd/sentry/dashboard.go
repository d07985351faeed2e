package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fraudsentry/sentry/internal/cli"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate scan statistics",
		Long: `Show totals across all recorded scans plus the recent trend of flags
found by each model.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	backend, err := newBackend()
	if err != nil {
		return err
	}

	stats, err := backend.DashboardStats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " FraudSentry dashboard"))
	fmt.Printf("  Scans run:            %d\n", stats.TotalScans)
	fmt.Printf("  Transactions scanned: %d\n", stats.TotalTx)
	fmt.Printf("  Fraud flagged (XGB):  %d\n", stats.TotalFraud)

	if len(stats.TrendData) == 0 {
		return nil
	}

	// Scale the trend bars to the busiest scan.
	maxFlags := 1
	for _, p := range stats.TrendData {
		if p.XGBoost > maxFlags {
			maxFlags = p.XGBoost
		}
		if p.RandomForest > maxFlags {
			maxFlags = p.RandomForest
		}
	}

	fmt.Println()
	fmt.Println(cli.BoldStyle.Render("Recent flag trend (XGBoost / Random Forest):"))
	for _, p := range stats.TrendData {
		xgb := strings.Repeat("█", p.XGBoost*20/maxFlags)
		rf := strings.Repeat("█", p.RandomForest*20/maxFlags)
		fmt.Printf("  %-12s %s %d\n", p.Name, cli.WarningStyle.Render(xgb), p.XGBoost)
		fmt.Printf("  %-12s %s %d\n", "", cli.InfoStyle.Render(rf), p.RandomForest)
	}
	return nil
}
