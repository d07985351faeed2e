package triage

import "github.com/fraudsentry/sentry/internal/model"

// maxReportRows bounds each report table to a readable prefix.
const maxReportRows = 20

// BuildReport partitions the batch by review state into confirmed frauds
// (never overridden) and false alarms (overridden), truncates each list to
// the first maxReportRows in original batch order, and packages the audit
// submission for the report service. The counters are the session's
// current stats, so xgb_fraud already reflects applied overrides.
func (s *Session) BuildReport(filename string) model.ReportRequest {
	confirmed := make([]model.Transaction, 0, maxReportRows)
	falseAlarms := make([]model.Transaction, 0, maxReportRows)

	for i, rec := range s.batch.Records {
		if s.IsOverridden(i) {
			if len(falseAlarms) < maxReportRows {
				falseAlarms = append(falseAlarms, rec)
			}
		} else if len(confirmed) < maxReportRows {
			confirmed = append(confirmed, rec)
		}
	}

	stats := s.Stats()
	return model.ReportRequest{
		Filename:        filename,
		Total:           stats.TotalScanned,
		XGBFraud:        stats.XGBFlags,
		RFFraud:         stats.RFFlags,
		ConfirmedFrauds: confirmed,
		FalseAlarms:     falseAlarms,
	}
}
