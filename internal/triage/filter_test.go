package triage

import (
	"testing"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewAll(t *testing.T) {
	s := NewSession(testBatch())

	rows := s.View(FilterAll)
	require.Len(t, rows, s.Len())
	for i, row := range rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, s.Record(i), row.Record)
		assert.Equal(t, s.Record(i).Priority(), row.Priority)
	}
}

func TestViewPartitionExhaustive(t *testing.T) {
	tests := []struct {
		name      string
		overrides []int
	}{
		{name: "no overrides", overrides: nil},
		{name: "one override", overrides: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(testBatch())
			for _, idx := range tt.overrides {
				require.True(t, s.Override(idx))
			}

			seen := make(map[int]int)
			for _, f := range []Filter{FilterFlagged, FilterOverridden, FilterSafe} {
				for _, row := range s.View(f) {
					seen[row.Index]++
				}
			}

			// Every record lands in exactly one of the three partitions.
			require.Len(t, seen, s.Len())
			for idx, count := range seen {
				assert.Equal(t, 1, count, "index %d appears %d times", idx, count)
			}
			assert.Len(t, s.View(FilterAll), s.Len())
		})
	}
}

func TestViewPreservesOrder(t *testing.T) {
	s := NewSession(testBatch())
	require.True(t, s.Override(1))

	for _, f := range []Filter{FilterAll, FilterFlagged, FilterOverridden, FilterSafe} {
		rows := s.View(f)
		for i := 1; i < len(rows); i++ {
			assert.Less(t, rows[i-1].Index, rows[i].Index)
		}
	}
}

func TestViewRecomputedAfterOverride(t *testing.T) {
	s := NewSession(testBatch())

	before := s.View(FilterFlagged)
	require.Len(t, before, 2)

	require.True(t, s.Override(1))

	after := s.View(FilterFlagged)
	require.Len(t, after, 1)
	assert.Equal(t, 0, after[0].Index)
	assert.True(t, s.View(FilterOverridden)[0].Overridden)
}

func TestFilterCycle(t *testing.T) {
	f := FilterAll
	order := []Filter{FilterFlagged, FilterOverridden, FilterSafe, FilterAll}
	for _, want := range order {
		f = f.Next()
		assert.Equal(t, want, f)
	}
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "all", FilterAll.String())
	assert.Equal(t, "flagged", FilterFlagged.String())
	assert.Equal(t, "overridden", FilterOverridden.String())
	assert.Equal(t, "safe", FilterSafe.String())
}

func TestViewRandomForestOnlyRowIsSafe(t *testing.T) {
	batch := model.Batch{
		Records: []model.Transaction{
			{XGBPrediction: 0, RFPrediction: 1},
		},
		Stats: model.ScanStats{TotalScanned: 1, RFFlags: 1},
	}
	s := NewSession(batch)

	assert.Empty(t, s.View(FilterFlagged))
	require.Len(t, s.View(FilterSafe), 1)
	assert.Equal(t, model.PrioritySafe, s.View(FilterSafe)[0].Priority)
}
