package triage

import (
	"testing"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBatch returns the canonical three-row batch: A flagged by both
// models, B by XGBoost alone, C by neither.
func testBatch() model.Batch {
	return model.Batch{
		Filename: "day_42.csv",
		Records: []model.Transaction{
			{Amount: 180000, XGBPrediction: 1, RFPrediction: 1, XGBRiskScore: 0.97},
			{Amount: 5200, XGBPrediction: 1, RFPrediction: 0, XGBRiskScore: 0.61},
			{Amount: 99, XGBPrediction: 0, RFPrediction: 0},
		},
		Stats: model.ScanStats{
			TotalScanned: 3,
			RFFlags:      1,
			XGBFlags:     2,
			BothAgreed:   1,
		},
	}
}

func TestOverrideWarningRow(t *testing.T) {
	s := NewSession(testBatch())

	require.True(t, s.Override(1))
	assert.True(t, s.IsOverridden(1))
	assert.Equal(t, 1, s.OverriddenCount())
	assert.Equal(t, 1, s.Stats().XGBFlags)
}

func TestOverrideIdempotent(t *testing.T) {
	s := NewSession(testBatch())

	require.True(t, s.Override(1))
	for i := 0; i < 5; i++ {
		assert.False(t, s.Override(1))
	}

	// Repeated overrides decrement XGBFlags exactly once.
	assert.Equal(t, 1, s.Stats().XGBFlags)
	assert.Equal(t, 1, s.OverriddenCount())
}

func TestOverrideEligibility(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "high priority row", index: 0},
		{name: "safe row", index: 2},
		{name: "index below range", index: -1},
		{name: "index past end", index: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(testBatch())

			assert.False(t, s.Override(tt.index))
			assert.Equal(t, 0, s.OverriddenCount())
			assert.Equal(t, testBatch().Stats, s.Stats())
		})
	}
}

func TestXGBFlagsNeverNegative(t *testing.T) {
	// A batch whose reported xgb count is lower than its warning rows;
	// the floor keeps the counter at zero.
	batch := model.Batch{
		Records: []model.Transaction{
			{XGBPrediction: 1, RFPrediction: 0},
			{XGBPrediction: 1, RFPrediction: 0},
		},
		Stats: model.ScanStats{TotalScanned: 2, XGBFlags: 1},
	}
	s := NewSession(batch)

	require.True(t, s.Override(0))
	require.True(t, s.Override(1))
	assert.Equal(t, 0, s.Stats().XGBFlags)
}

func TestFrozenCountersSurviveOverrides(t *testing.T) {
	s := NewSession(testBatch())
	require.True(t, s.Override(1))

	stats := s.Stats()
	assert.Equal(t, 3, stats.TotalScanned)
	assert.Equal(t, 1, stats.RFFlags)
	assert.Equal(t, 1, stats.BothAgreed)
}

func TestTriageScenario(t *testing.T) {
	s := NewSession(testBatch())

	indices := func(rows []Row) []int {
		out := make([]int, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Index)
		}
		return out
	}

	assert.Equal(t, []int{0, 1}, indices(s.View(FilterFlagged)))
	assert.Equal(t, []int{2}, indices(s.View(FilterSafe)))
	assert.Empty(t, s.View(FilterOverridden))

	require.True(t, s.Override(1))

	assert.Equal(t, 1, s.Stats().XGBFlags)
	assert.Equal(t, []int{1}, indices(s.View(FilterOverridden)))
	assert.Equal(t, []int{0}, indices(s.View(FilterFlagged)))
	assert.Equal(t, []int{2}, indices(s.View(FilterSafe)))
	assert.Equal(t, 1, s.Stats().BothAgreed)
}
