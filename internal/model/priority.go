package model

// Priority is the triage label derived from the two classifier verdicts.
type Priority int

// Priority levels, highest first.
const (
	PriorityHigh Priority = iota
	PriorityWarning
	PrioritySafe
)

// String returns the display label for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH PRIORITY"
	case PriorityWarning:
		return "WARNING"
	case PrioritySafe:
		return "SAFE"
	default:
		return "UNKNOWN"
	}
}

// ClassifyPriority derives a priority from the two verdicts:
// both models flagged -> high priority, XGBoost alone -> warning,
// anything else -> safe. A Random Forest-only flag is not surfaced as a
// distinct signal; it maps to safe like an unflagged row.
func ClassifyPriority(xgbPrediction, rfPrediction int) Priority {
	switch {
	case xgbPrediction == 1 && rfPrediction == 1:
		return PriorityHigh
	case xgbPrediction == 1:
		return PriorityWarning
	default:
		return PrioritySafe
	}
}

// Priority returns the derived triage label for the transaction.
func (t Transaction) Priority() Priority {
	return ClassifyPriority(t.XGBPrediction, t.RFPrediction)
}

// FlaggedBy names the model to consult for a deep analysis of this row:
// XGB when XGBoost flagged it, RF otherwise.
func (t Transaction) FlaggedBy() string {
	if t.XGBPrediction == 1 {
		return "XGB"
	}
	return "RF"
}
