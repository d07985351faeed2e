// Package tui implements the interactive triage console.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudsentry/sentry/internal/common"
	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/service"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

// Config holds everything the console needs: the ingested batch and the
// backend for inspections and report submission.
type Config struct {
	Backend   service.Backend
	Batch     model.Batch
	Theme     themes.Theme
	ReportDir string
}

// Run starts the triage console over an ingested batch and blocks until
// the analyst quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Backend == nil {
		return fmt.Errorf("backend is required")
	}
	if len(cfg.Batch.Records) == 0 {
		return fmt.Errorf("%w: scan returned no flagged transactions", common.ErrNoBatch)
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "."
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("triage console failed: %w", err)
	}
	return nil
}
