package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/fraudsentry/sentry/internal/tui/themes"
)

func TestStatsPanelCompactView(t *testing.T) {
	stats := model.ScanStats{TotalScanned: 10, RFFlags: 3, XGBFlags: 4, BothAgreed: 2}
	m := NewStatsPanelModel(stats, 2, themes.Default)
	m.SetCompact(true)

	view := m.View()
	assert.Contains(t, view, "Scanned: 10")
	assert.Contains(t, view, "XGB: 4")
	assert.Contains(t, view, "Cleared: 0")
}

func TestStatsPanelReflectsOverrides(t *testing.T) {
	stats := model.ScanStats{TotalScanned: 10, RFFlags: 3, XGBFlags: 4, BothAgreed: 2}
	m := NewStatsPanelModel(stats, 2, themes.Default)
	m.SetCompact(true)

	stats.XGBFlags = 3
	m.SetStats(stats, 1)

	view := m.View()
	assert.Contains(t, view, "XGB: 3")
	assert.Contains(t, view, "Cleared: 1")
}

func TestStatsPanelFullViewHasCards(t *testing.T) {
	stats := model.ScanStats{TotalScanned: 5, RFFlags: 1, XGBFlags: 2, BothAgreed: 1}
	m := NewStatsPanelModel(stats, 2, themes.Default)

	view := m.View()
	assert.Contains(t, view, "Random Forest")
	assert.Contains(t, view, "XGBoost")
	assert.Contains(t, view, "Consensus")
	assert.Contains(t, view, "warnings reviewed")
}

func TestStatsPanelNoWarnings(t *testing.T) {
	m := NewStatsPanelModel(model.ScanStats{TotalScanned: 5}, 0, themes.Default)
	assert.Contains(t, m.View(), "No warning rows")
}
