package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/triage"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

// RecordListModel manages the scored-transaction table. It renders a
// filtered projection of the batch; each visible row carries its original
// batch index so actions taken from the list address the right record.
type RecordListModel struct {
	theme  themes.Theme
	rows   []triage.Row
	table  table.Model
	width  int
	height int
}

// NewRecordList creates a list over the given projection.
func NewRecordList(rows []triage.Row, theme themes.Theme) RecordListModel {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Amount", Width: 14},
		{Title: "Sender Bal", Width: 14},
		{Title: "XGB Score", Width: 10},
		{Title: "Priority", Width: 14},
		{Title: "Review", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := RecordListModel{
		theme: theme,
		table: t,
	}
	m.SetRows(rows)
	return m
}

// SetRows replaces the visible projection, keeping the cursor in range.
func (m *RecordListModel) SetRows(rows []triage.Row) {
	m.rows = rows

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			fmt.Sprintf("%d", row.Index),
			fmt.Sprintf("$%.2f", row.Record.Amount),
			fmt.Sprintf("$%.2f", row.Record.OldBalanceOrg),
			fmt.Sprintf("%.2f", row.Record.XGBRiskScore),
			priorityLabel(row.Priority),
			reviewLabel(row),
		})
	}
	m.table.SetRows(tableRows)

	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the row under the cursor, if any.
func (m RecordListModel) Selected() (triage.Row, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return triage.Row{}, false
	}
	return m.rows[cursor], true
}

// Len returns the number of visible rows.
func (m RecordListModel) Len() int {
	return len(m.rows)
}

// SetSize resizes the list to fit the given area.
func (m *RecordListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 4 {
		m.table.SetHeight(height - 2)
	}
}

// Update handles messages; navigation is delegated to the table.
func (m RecordListModel) Update(msg tea.Msg) (RecordListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m RecordListModel) View() string {
	if len(m.rows) == 0 {
		return m.theme.Subtitle.Render("No transactions match this filter.")
	}
	return m.table.View()
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "HIGH PRIORITY"
	case model.PriorityWarning:
		return "WARNING"
	default:
		return "Safe"
	}
}

func reviewLabel(row triage.Row) string {
	if row.Overridden {
		return "✓ cleared"
	}
	return ""
}
