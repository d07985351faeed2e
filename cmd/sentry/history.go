package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudsentry/sentry/internal/cli"
	"github.com/fraudsentry/sentry/internal/common"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past scans",
		Long:  `List the scans recorded by the FraudSentry API, newest first.`,
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, _ []string) error {
	backend, err := newBackend()
	if err != nil {
		return err
	}

	records, err := backend.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}
	common.LogInfo("Fetched scan history", common.Fields{"records": len(records)})

	if len(records) == 0 {
		fmt.Println(cli.FormatInfo("No scans recorded yet. Run 'sentry scan' first."))
		return nil
	}

	header := fmt.Sprintf("%-20s %-28s %8s %6s %6s", "Date", "File", "Rows", "XGB", "RF")
	fmt.Println(cli.TableHeaderStyle.Render(header))
	for _, rec := range records {
		fmt.Printf("%-20s %-28s %8d %6d %6d\n",
			rec.ScanDate, rec.Filename, rec.TotalScanned, rec.FraudXGB, rec.FraudRF)
	}
	return nil
}
