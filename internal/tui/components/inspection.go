package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/triage"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

// InspectionModel renders the deep-analysis modal for one record: a
// spinner while the request is outstanding, then the verdict, ranked
// attribution factors and narrative, or the failure with a retry hint.
type InspectionModel struct {
	theme   themes.Theme
	spinner spinner.Model
	state   triage.InspectionState
	index   int
	record  model.Transaction
	result  *model.Explanation
	err     error
	width   int
}

// NewInspectionModel creates an idle inspection modal.
func NewInspectionModel(theme themes.Theme) InspectionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return InspectionModel{
		theme:   theme,
		spinner: sp,
		state:   triage.InspectionIdle,
	}
}

// Show puts the modal in the pending state for the given record and
// returns the spinner tick command.
func (m *InspectionModel) Show(index int, record model.Transaction) tea.Cmd {
	m.state = triage.InspectionPending
	m.index = index
	m.record = record
	m.result = nil
	m.err = nil
	return m.spinner.Tick
}

// SetResult displays a resolved explanation.
func (m *InspectionModel) SetResult(index int, result *model.Explanation) {
	m.state = triage.InspectionReady
	m.index = index
	m.result = result
	m.err = nil
}

// SetError displays a failed inspection. The analyst can retry with the
// inspect key.
func (m *InspectionModel) SetError(index int, err error) {
	m.state = triage.InspectionFailed
	m.index = index
	m.result = nil
	m.err = err
}

// Hide returns the modal to idle.
func (m *InspectionModel) Hide() {
	m.state = triage.InspectionIdle
	m.result = nil
	m.err = nil
}

// Visible reports whether the modal should be rendered.
func (m InspectionModel) Visible() bool {
	return m.state != triage.InspectionIdle
}

// Index returns the batch index the modal currently shows.
func (m InspectionModel) Index() int {
	return m.index
}

// SetWidth resizes the modal.
func (m *InspectionModel) SetWidth(width int) {
	m.width = width
}

// Update handles messages.
func (m InspectionModel) Update(msg tea.Msg) (InspectionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state != triage.InspectionPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" && m.Visible() {
			return m, func() tea.Msg { return CloseInspectionMsg{} }
		}
	}
	return m, nil
}

// View renders the modal.
func (m InspectionModel) View() string {
	if !m.Visible() {
		return ""
	}

	width := m.width
	if width < 40 {
		width = 60
	}
	box := m.theme.BorderedBox.Width(width - 4)

	var body string
	switch m.state {
	case triage.InspectionPending:
		body = fmt.Sprintf("%s Loading intelligence for row %d ($%.2f)...",
			m.spinner.View(), m.index, m.record.Amount)
	case triage.InspectionFailed:
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.StatusError.Render("Analysis failed"),
			m.theme.Normal.Render(m.err.Error()),
			m.theme.Subtitle.Render("Press Enter to retry, Esc to close."),
		)
	case triage.InspectionReady:
		body = m.renderResult()
	}

	title := m.theme.Title.Render(fmt.Sprintf("Analysis Report — row %d", m.index))
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m InspectionModel) renderResult() string {
	sections := make([]string, 0, 4)

	verdict := m.theme.StatusSuccess.Render("Transaction appears safe")
	if m.result.IsFraud == 1 {
		verdict = m.theme.StatusError.Render("FRAUD DETECTED")
	}
	sections = append(sections, fmt.Sprintf("%s  (model: %s, risk %.2f)",
		verdict, m.result.ModelUsed, m.result.RiskScore))

	if len(m.result.TopFactors) > 0 {
		var factors strings.Builder
		factors.WriteString(m.theme.Bold.Render("Top risk factors"))
		factors.WriteString("\n")
		for _, f := range m.result.TopFactors {
			style := m.theme.StatusSuccess
			if f.Impact > 0 {
				style = m.theme.StatusError
			}
			factors.WriteString(fmt.Sprintf("  %-16s %s\n",
				f.Feature, style.Render(fmt.Sprintf("%+.2f", f.Impact))))
		}
		sections = append(sections, factors.String())
	}

	if m.result.Narrative != "" {
		sections = append(sections,
			m.theme.Bold.Render("Analyst narrative")+"\n"+m.theme.Italic.Render(m.result.Narrative))
	}

	sections = append(sections, m.theme.Subtitle.Render("Esc to close."))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
