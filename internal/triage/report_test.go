package triage

import (
	"fmt"
	"testing"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportPartition(t *testing.T) {
	s := NewSession(testBatch())
	require.True(t, s.Override(1))

	report := s.BuildReport("day_42.csv")

	assert.Equal(t, "day_42.csv", report.Filename)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.XGBFraud)
	assert.Equal(t, 1, report.RFFraud)

	// Confirmed and overridden partition the batch with no overlap.
	require.Len(t, report.ConfirmedFrauds, 2)
	require.Len(t, report.FalseAlarms, 1)
	assert.Equal(t, s.Record(0), report.ConfirmedFrauds[0])
	assert.Equal(t, s.Record(2), report.ConfirmedFrauds[1])
	assert.Equal(t, s.Record(1), report.FalseAlarms[0])
}

func TestBuildReportNoOverrides(t *testing.T) {
	s := NewSession(testBatch())

	report := s.BuildReport("day_42.csv")
	assert.Len(t, report.ConfirmedFrauds, s.Len())
	assert.Empty(t, report.FalseAlarms)
	assert.Equal(t, 2, report.XGBFraud)
}

func TestBuildReportTruncatesInOriginalOrder(t *testing.T) {
	records := make([]model.Transaction, 50)
	for i := range records {
		records[i] = model.Transaction{Amount: float64(i), XGBPrediction: 1}
	}
	s := NewSession(model.Batch{
		Records: records,
		Stats:   model.ScanStats{TotalScanned: 50, XGBFlags: 50},
	})

	// Override every other warning row.
	for i := 0; i < 50; i += 2 {
		require.True(t, s.Override(i))
	}

	report := s.BuildReport("big.csv")
	require.Len(t, report.ConfirmedFrauds, maxReportRows)
	require.Len(t, report.FalseAlarms, maxReportRows)

	// Each list keeps batch order, no re-sorting by risk.
	for i, rec := range report.FalseAlarms {
		assert.Equal(t, float64(2*i), rec.Amount, fmt.Sprintf("false alarm %d", i))
	}
	for i, rec := range report.ConfirmedFrauds {
		assert.Equal(t, float64(2*i+1), rec.Amount, fmt.Sprintf("confirmed %d", i))
	}
}
