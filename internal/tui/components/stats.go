package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

// StatsPanelModel displays the batch counters: the two models' flag
// counts, their consensus, total rows, and analyst review progress.
// XGBFlags and the overridden count move as false alarms are confirmed;
// the other counters stay as reported at ingestion.
type StatsPanelModel struct {
	theme       themes.Theme
	stats       model.ScanStats
	progressBar progress.Model
	overridden  int
	warnings    int
	width       int
	compact     bool
}

// NewStatsPanelModel creates a stats panel for a freshly ingested batch.
// warnings is the number of override-eligible rows, used to scale the
// review progress bar.
func NewStatsPanelModel(stats model.ScanStats, warnings int, theme themes.Theme) StatsPanelModel {
	prog := progress.New(progress.WithDefaultGradient())
	prog.ShowPercentage = false

	return StatsPanelModel{
		theme:       theme,
		stats:       stats,
		warnings:    warnings,
		progressBar: prog,
	}
}

// SetStats updates the live counters after an override.
func (m *StatsPanelModel) SetStats(stats model.ScanStats, overridden int) {
	m.stats = stats
	m.overridden = overridden
}

// SetCompact switches between the one-line and boxed layouts.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Update handles messages.
func (m StatsPanelModel) Update(msg tea.Msg) (StatsPanelModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.progressBar.Width = min(m.width-4, 40)
	}
	return m, nil
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if m.compact {
		return m.renderCompact()
	}
	return m.renderFull()
}

func (m StatsPanelModel) renderFull() string {
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCard("Random Forest", fmt.Sprintf("%d", m.stats.RFFlags), m.theme.StatusInfo),
		m.renderCard("XGBoost", fmt.Sprintf("%d", m.stats.XGBFlags), m.theme.StatusWarning),
		m.renderCard("Consensus", fmt.Sprintf("%d", m.stats.BothAgreed), m.theme.StatusError),
		m.renderCard("Scanned", fmt.Sprintf("%d", m.stats.TotalScanned), m.theme.StatusSuccess),
	)

	return lipgloss.JoinVertical(lipgloss.Left, cards, m.renderReviewProgress())
}

func (m StatsPanelModel) renderCompact() string {
	line := fmt.Sprintf(
		"Scanned: %d | RF: %d | XGB: %d | Consensus: %d | Cleared: %d",
		m.stats.TotalScanned,
		m.stats.RFFlags,
		m.stats.XGBFlags,
		m.stats.BothAgreed,
		m.overridden,
	)
	return m.theme.Box.Render(line)
}

func (m StatsPanelModel) renderCard(label, value string, style lipgloss.Style) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Subtitle.Render(label),
		style.Render(value),
	)
	return m.theme.BorderedBox.Render(content)
}

func (m StatsPanelModel) renderReviewProgress() string {
	if m.warnings == 0 {
		return m.theme.Subtitle.Render("No warning rows to review.")
	}

	frac := float64(m.overridden) / float64(m.warnings)
	label := fmt.Sprintf("%d/%d warnings reviewed", m.overridden, m.warnings)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Review progress"),
		m.progressBar.ViewAs(frac),
		m.theme.Normal.Render(label),
	)
}
