package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/service"
	"github.com/fraudsentry/sentry/internal/triage"
	"github.com/fraudsentry/sentry/internal/tui/components"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

// Model holds the triage console state. All mutation of the session goes
// through Update, so the single-writer invariants of the triage package
// hold by construction.
type Model struct {
	theme      themes.Theme
	keymap     KeyMap
	backend    service.Backend
	session    *triage.Session
	inspector  triage.Inspector
	filter     triage.Filter
	list       components.RecordListModel
	statsPanel components.StatsPanelModel
	inspection components.InspectionModel
	reportDir  string
	status     string
	lastError  error
	width      int
	height     int
	saving     bool
	showHelp   bool
	quitting   bool
}

// newModel creates a model for an already-ingested batch.
func newModel(cfg Config) Model {
	session := triage.NewSession(cfg.Batch)

	warnings := 0
	for _, row := range session.View(triage.FilterAll) {
		if row.Priority == model.PriorityWarning {
			warnings++
		}
	}

	m := Model{
		theme:      cfg.Theme,
		keymap:     DefaultKeyMap(),
		backend:    cfg.Backend,
		session:    session,
		filter:     triage.FilterAll,
		reportDir:  cfg.ReportDir,
		statsPanel: components.NewStatsPanelModel(session.Stats(), warnings, cfg.Theme),
		inspection: components.NewInspectionModel(cfg.Theme),
	}
	m.list = components.NewRecordList(session.View(m.filter), cfg.Theme)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-12)
		m.inspection.SetWidth(msg.Width)
		m.statsPanel.SetCompact(msg.Width < 100)
		newStats, cmd := m.statsPanel.Update(msg)
		m.statsPanel = newStats
		cmds = append(cmds, cmd)

	case inspectionResultMsg:
		if msg.err != nil {
			if m.inspector.Fail(msg.gen, msg.err) {
				m.inspection.SetError(msg.index, msg.err)
			}
		} else if m.inspector.Resolve(msg.gen, msg.result) {
			m.inspection.SetResult(msg.index, msg.result)
		}

	case components.CloseInspectionMsg:
		m.inspector.Close()
		m.inspection.Hide()

	case reportSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.lastError = msg.err
			m.status = "Report failed: " + msg.err.Error()
		} else {
			m.status = "Report saved to " + msg.path
		}

	default:
		newInspection, cmd := m.inspection.Update(msg)
		m.inspection = newInspection
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inspection.Visible() {
		return m.handleInspectionKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.CycleFilter):
		m.filter = m.filter.Next()
		m.list.SetRows(m.session.View(m.filter))
		return m, nil

	case key.Matches(msg, m.keymap.MarkSafe):
		return m.handleMarkSafe()

	case key.Matches(msg, m.keymap.Inspect):
		return m.handleInspect()

	case key.Matches(msg, m.keymap.Report):
		return m.handleSaveReport()
	}

	// Everything else is list navigation.
	newList, cmd := m.list.Update(msg)
	m.list = newList
	return m, cmd
}

// handleInspectionKey routes keys while the modal is open: Esc closes,
// Enter retries a failed inspection. The list underneath stays inert.
func (m Model) handleInspectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Inspect) && m.inspector.State() == triage.InspectionFailed {
		index := m.inspection.Index()
		gen := m.inspector.Begin(index)
		showCmd := m.inspection.Show(index, m.session.Record(index))
		return m, tea.Batch(showCmd, inspectCmd(m.backend, gen, index, m.session.Record(index)))
	}

	newInspection, cmd := m.inspection.Update(msg)
	m.inspection = newInspection
	return m, cmd
}

func (m Model) handleMarkSafe() (tea.Model, tea.Cmd) {
	row, ok := m.list.Selected()
	if !ok {
		return m, nil
	}

	if !m.session.Override(row.Index) {
		m.status = "Only WARNING rows can be cleared as false alarms."
		return m, nil
	}

	m.status = fmt.Sprintf("Row %d cleared as a false alarm.", row.Index)
	m.list.SetRows(m.session.View(m.filter))
	m.statsPanel.SetStats(m.session.Stats(), m.session.OverriddenCount())
	return m, nil
}

func (m Model) handleInspect() (tea.Model, tea.Cmd) {
	row, ok := m.list.Selected()
	if !ok {
		return m, nil
	}

	gen := m.inspector.Begin(row.Index)
	showCmd := m.inspection.Show(row.Index, row.Record)
	return m, tea.Batch(showCmd, inspectCmd(m.backend, gen, row.Index, row.Record))
}

func (m Model) handleSaveReport() (tea.Model, tea.Cmd) {
	if m.saving {
		m.status = "Report submission already in progress."
		return m, nil
	}

	m.saving = true
	m.status = "Submitting audit report..."
	report := m.session.BuildReport(m.session.Filename())
	return m, saveReportCmd(m.backend, report, m.reportDir)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	title := m.theme.Title.Render("🛡️  FraudSentry — " + m.session.Filename())

	filterLine := m.theme.Subtitle.Render(fmt.Sprintf(
		"Filter: %s (%d of %d rows)", m.filter, m.list.Len(), m.session.Len()))

	sections := []string{
		title,
		m.statsPanel.View(),
		filterLine,
	}

	if m.inspection.Visible() {
		sections = append(sections, m.inspection.View())
	} else {
		sections = append(sections, m.list.View())
	}

	if m.status != "" {
		sections = append(sections, m.theme.StatusInfo.Render(m.status))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFooter() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	footer := ""
	for i, p := range parts {
		if i > 0 {
			footer += "  •  "
		}
		footer += p
	}
	return m.theme.Subtitle.Render(footer)
}

func (m Model) renderHelp() string {
	rows := []string{m.theme.Title.Render("Key bindings")}
	for _, group := range m.keymap.FullHelp() {
		for _, b := range group {
			rows = append(rows, fmt.Sprintf("  %-12s %s", b.Help().Key, b.Help().Desc))
		}
		rows = append(rows, "")
	}
	rows = append(rows, m.theme.Subtitle.Render("Press any key to return."))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
