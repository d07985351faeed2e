// Package triage implements the batch review state machine: per-row
// override tracking, aggregate counters, filtered projections of the
// batch, the single-slot inspection lifecycle, and audit report assembly.
package triage

import (
	"github.com/fraudsentry/sentry/internal/model"
)

// Session owns the review state for one ingested batch. All mutation goes
// through its methods; a new scan replaces the session wholesale. The
// session is not safe for concurrent use: the event loop driving it runs
// on a single goroutine.
type Session struct {
	batch      model.Batch
	stats      model.ScanStats
	overridden map[int]struct{}
}

// NewSession starts a review session for a freshly ingested batch. The
// batch's stats are copied; the batch itself is treated as immutable from
// here on.
func NewSession(batch model.Batch) *Session {
	return &Session{
		batch:      batch,
		stats:      batch.Stats,
		overridden: make(map[int]struct{}),
	}
}

// Len returns the number of records in the batch.
func (s *Session) Len() int {
	return len(s.batch.Records)
}

// Filename returns the name of the uploaded file this session reviews.
func (s *Session) Filename() string {
	return s.batch.Filename
}

// Record returns the record at the given batch index.
func (s *Session) Record(index int) model.Transaction {
	return s.batch.Records[index]
}

// Stats returns the current aggregate counters. TotalScanned, RFFlags and
// BothAgreed are the values reported at ingestion; XGBFlags reflects any
// overrides applied since.
func (s *Session) Stats() model.ScanStats {
	return s.stats
}

// IsOverridden reports whether the analyst has marked the record at index
// as a false alarm.
func (s *Session) IsOverridden(index int) bool {
	_, ok := s.overridden[index]
	return ok
}

// OverriddenCount returns how many records have been marked false alarms.
func (s *Session) OverriddenCount() int {
	return len(s.overridden)
}

// Override marks the record at index as an analyst-confirmed false alarm
// and decrements the XGBoost flag count, floored at zero. Only records
// whose priority is Warning (XGBoost-only flags) are eligible; the
// transition is one-way and idempotent, so repeated calls on the same
// index apply the stats side effect at most once. Returns true when the
// record transitioned on this call.
func (s *Session) Override(index int) bool {
	if index < 0 || index >= len(s.batch.Records) {
		return false
	}
	if s.batch.Records[index].Priority() != model.PriorityWarning {
		return false
	}
	if _, done := s.overridden[index]; done {
		return false
	}
	s.overridden[index] = struct{}{}
	if s.stats.XGBFlags > 0 {
		s.stats.XGBFlags--
	}
	return true
}
