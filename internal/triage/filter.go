package triage

import "github.com/fraudsentry/sentry/internal/model"

// Filter selects which partition of the batch a view shows.
type Filter int

// Display criteria. Flagged, Overridden and Safe partition the batch
// exactly for any review state; All is their union.
const (
	FilterAll Filter = iota
	FilterFlagged
	FilterOverridden
	FilterSafe
)

// String returns the display label for the filter.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterFlagged:
		return "flagged"
	case FilterOverridden:
		return "overridden"
	case FilterSafe:
		return "safe"
	default:
		return "unknown"
	}
}

// Next cycles to the following filter criterion.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterFlagged
	case FilterFlagged:
		return FilterOverridden
	case FilterOverridden:
		return FilterSafe
	default:
		return FilterAll
	}
}

// Row is one record of a filtered view. Index is the record's original
// batch position, so actions taken from the view address the right row.
type Row struct {
	Index      int
	Record     model.Transaction
	Priority   model.Priority
	Overridden bool
}

// View projects the batch through the filter. The result preserves batch
// order and is recomputed on every call so it can never drift from the
// review state.
func (s *Session) View(f Filter) []Row {
	rows := make([]Row, 0, len(s.batch.Records))
	for i, rec := range s.batch.Records {
		row := Row{
			Index:      i,
			Record:     rec,
			Priority:   rec.Priority(),
			Overridden: s.IsOverridden(i),
		}
		if matches(f, row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func matches(f Filter, row Row) bool {
	switch f {
	case FilterAll:
		return true
	case FilterOverridden:
		return row.Overridden
	case FilterFlagged:
		return !row.Overridden && row.Priority != model.PrioritySafe
	case FilterSafe:
		return !row.Overridden && row.Priority == model.PrioritySafe
	default:
		return false
	}
}
