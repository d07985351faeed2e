// Package service defines the interfaces for all external collaborators.
package service

import (
	"context"
	"io"

	"github.com/fraudsentry/sentry/internal/model"
)

// Scorer checks a single transaction against one of the fraud models and
// returns the verdict with its attribution and optional narrative.
type Scorer interface {
	Predict(ctx context.Context, tx model.Transaction, modelType string) (*model.Explanation, error)
}

// BatchScanner ingests a raw transaction file and returns the scored
// batch. A failed upload admits no partial batch.
type BatchScanner interface {
	UploadBatch(ctx context.Context, filename string, file io.Reader) (*model.Batch, error)
}

// ReportSink submits the audit payload and returns the rendered report as
// opaque bytes. Submission implies the scan was durably recorded.
type ReportSink interface {
	SaveReport(ctx context.Context, report model.ReportRequest) ([]byte, error)
}

// HistoryReader exposes the service's read-only scan history.
type HistoryReader interface {
	History(ctx context.Context) ([]model.ScanRecord, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// Backend is the full FraudSentry API surface the console talks to.
type Backend interface {
	Scorer
	BatchScanner
	ReportSink
	HistoryReader
}
