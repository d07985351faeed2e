package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fraudsentry/sentry/internal/cli"
	"github.com/fraudsentry/sentry/internal/common"
	"github.com/fraudsentry/sentry/internal/config"
	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/tui"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file.csv>",
		Short: "Upload a transaction file and triage the results",
		Long: `Upload a CSV of transactions to the FraudSentry API for scoring by both
fraud models, then review the flagged rows in the interactive console.

With --summary the console is skipped and a priority breakdown is printed
instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Bool("summary", false, "Print a non-interactive summary instead of opening the console")
	cmd.Flags().String("report-dir", ".", "Directory for downloaded report artifacts")

	_ = viper.BindPFlag("scan.summary", cmd.Flags().Lookup("summary"))
	_ = viper.BindPFlag("scan.report_dir", cmd.Flags().Lookup("report-dir"))

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	path := config.ExpandPath(args[0])

	backend, err := newBackend()
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	fmt.Println(cli.FormatTitle("Scanning " + filepath.Base(path) + "..."))

	// A failed upload admits no partial batch; there is nothing to clean up.
	batch, err := backend.UploadBatch(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		common.LogError(err, "Batch scan failed", common.Fields{"file": filepath.Base(path)})
		return common.NewUserError("batch scan failed", common.ErrBatchRejected)
	}

	if viper.GetBool("scan.summary") {
		return printScanSummary(batch)
	}

	return tui.Run(cmd.Context(), tui.Config{
		Backend:   backend,
		Batch:     *batch,
		Theme:     themes.Default,
		ReportDir: config.ExpandPath(viper.GetString("scan.report_dir")),
	})
}

// printScanSummary walks the scored batch once, tallying priorities, and
// prints the same counters the console's stat cards show.
func printScanSummary(batch *model.Batch) error {
	bar := progressbar.NewOptions(len(batch.Records),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Classifying priorities..."),
	)

	var high, warning, safe int
	for _, rec := range batch.Records {
		switch rec.Priority() {
		case model.PriorityHigh:
			high++
		case model.PriorityWarning:
			warning++
		default:
			safe++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	stats := batch.Stats
	fmt.Println(cli.BoldStyle.Render("Scan summary: " + batch.Filename))
	fmt.Printf("  Total scanned:   %d\n", stats.TotalScanned)
	fmt.Printf("  Random Forest:   %d flagged\n", stats.RFFlags)
	fmt.Printf("  XGBoost:         %d flagged\n", stats.XGBFlags)
	fmt.Printf("  Consensus:       %d\n", stats.BothAgreed)
	fmt.Println()
	fmt.Println(cli.FormatError(fmt.Sprintf("%d high priority", high)))
	fmt.Println(cli.FormatWarning(fmt.Sprintf("%d warnings (XGBoost only)", warning)))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d safe", safe)))
	return nil
}
