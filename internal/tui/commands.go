package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudsentry/sentry/internal/common"
	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/service"
)

// inspectCmd requests a deep analysis for one record from the model that
// flagged it. The result carries the issuing generation so late responses
// from superseded requests are dropped at the inspection slot.
func inspectCmd(scorer service.Scorer, gen uint64, index int, record model.Transaction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := scorer.Predict(ctx, record, record.FlaggedBy())
		return inspectionResultMsg{
			gen:    gen,
			index:  index,
			result: result,
			err:    err,
		}
	}
}

// saveReportCmd submits the audit payload and writes the returned
// artifact to disk. The artifact is opaque bytes; no parsing or
// validation happens here.
func saveReportCmd(sink service.ReportSink, report model.ReportRequest, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		artifact, err := sink.SaveReport(ctx, report)
		if err != nil {
			return reportSavedMsg{err: fmt.Errorf("%w: %v", common.ErrReportFailed, err)}
		}

		name := fmt.Sprintf("FraudSentry_Report_%s.pdf", time.Now().Format("20060102_150405"))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, artifact, 0o644); err != nil {
			return reportSavedMsg{err: fmt.Errorf("failed to write report artifact: %w", err)}
		}
		return reportSavedMsg{path: path}
	}
}
