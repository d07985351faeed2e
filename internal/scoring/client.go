// Package scoring implements the HTTP client for the FraudSentry API: the
// fraud-scoring models, the explainer, the report renderer, and the scan
// history all live behind it.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fraudsentry/sentry/internal/model"
)

// Client talks to a FraudSentry API instance. It performs no retries and
// sends no cancellation beyond the request context; a failed call is
// terminal for that attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type predictRequest struct {
	Amount         float64 `json:"amount"`
	OldBalanceOrg  float64 `json:"oldbalanceOrg"`
	NewBalanceOrig float64 `json:"newbalanceOrig"`
	OldBalanceDest float64 `json:"oldbalanceDest"`
	NewBalanceDest float64 `json:"newbalanceDest"`
}

type uploadBatchResponse struct {
	Stats   model.ScanStats     `json:"stats"`
	Records []model.Transaction `json:"top_risky_transactions"`
}

// Predict scores a single transaction with the selected model ("RF" or
// "XGB") and returns the verdict, attribution pairs, and narrative.
func (c *Client) Predict(ctx context.Context, tx model.Transaction, modelType string) (*model.Explanation, error) {
	endpoint := fmt.Sprintf("%s/predict?model_type=%s", c.baseURL, url.QueryEscape(modelType))

	body, err := json.Marshal(predictRequest{
		Amount:         tx.Amount,
		OldBalanceOrg:  tx.OldBalanceOrg,
		NewBalanceOrig: tx.NewBalanceOrig,
		OldBalanceDest: tx.OldBalanceDest,
		NewBalanceDest: tx.NewBalanceDest,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Requesting single-transaction score",
		"model", modelType,
		"amount", tx.Amount)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach scoring service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("predict", resp)
	}

	var expl model.Explanation
	if err := json.NewDecoder(resp.Body).Decode(&expl); err != nil {
		return nil, fmt.Errorf("failed to decode predict response: %w", err)
	}
	return &expl, nil
}

// UploadBatch sends the raw file to the ingestion endpoint and returns the
// scored batch with its stats. The file is forwarded opaquely; parsing is
// the service's concern.
func (c *Client) UploadBatch(ctx context.Context, filename string, file io.Reader) (*model.Batch, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-batch", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	slog.Debug("Uploading batch for scanning", "filename", filename)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload batch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("upload-batch", resp)
	}

	var parsed uploadBatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode batch response: %w", err)
	}

	slog.Info("Batch scan complete",
		"filename", filename,
		"total_scanned", parsed.Stats.TotalScanned,
		"xgb_flags", parsed.Stats.XGBFlags,
		"rf_flags", parsed.Stats.RFFlags)

	return &model.Batch{
		Filename: filename,
		Records:  parsed.Records,
		Stats:    parsed.Stats,
	}, nil
}

// SaveReport submits the audit payload and returns the rendered PDF as
// opaque bytes. The service records the scan in its history as part of
// the same call.
func (c *Client) SaveReport(ctx context.Context, report model.ReportRequest) ([]byte, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/save-report", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("save-report", resp)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report artifact: %w", err)
	}
	return artifact, nil
}

// History fetches the list of past scans, newest first.
func (c *Client) History(ctx context.Context) ([]model.ScanRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create history request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("history", resp)
	}

	var records []model.ScanRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode history response: %w", err)
	}
	return records, nil
}

// DashboardStats fetches aggregate scan totals and the per-scan flag
// trend by model.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashboard-stats", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("dashboard-stats", resp)
	}

	var stats model.DashboardStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard response: %w", err)
	}
	return &stats, nil
}

func apiError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("FraudSentry API error on %s: %d - %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
}
