package tui

import "github.com/fraudsentry/sentry/internal/model"

// inspectionResultMsg carries the outcome of one deep-analysis request.
// The generation ties it to the request that issued it; stale generations
// are dropped by the inspector.
type inspectionResultMsg struct {
	err    error
	result *model.Explanation
	gen    uint64
	index  int
}

// reportSavedMsg carries the outcome of a report submission.
type reportSavedMsg struct {
	err  error
	path string
}
