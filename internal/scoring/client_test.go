package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fraudsentry/sentry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "XGB", r.URL.Query().Get("model_type"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"is_fraud": 1,
			"risk_score": 0.91,
			"model_used": "XGB",
			"message": "Transaction flagged as suspicious!",
			"explanation": [
				{"feature": "oldbalanceOrg", "impact": 2.1},
				{"feature": "amount", "impact": -0.4}
			],
			"ai_analysis": "The sender account is being drained."
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	expl, err := client.Predict(context.Background(), model.Transaction{Amount: 5000}, "XGB")
	require.NoError(t, err)

	assert.Equal(t, 1, expl.IsFraud)
	assert.InDelta(t, 0.91, expl.RiskScore, 1e-9)
	assert.Equal(t, "XGB", expl.ModelUsed)
	require.Len(t, expl.TopFactors, 2)
	assert.Equal(t, "oldbalanceOrg", expl.TopFactors[0].Feature)
	assert.InDelta(t, -0.4, expl.TopFactors[1].Impact, 1e-9)
	assert.Equal(t, "The sender account is being drained.", expl.Narrative)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	expl, err := client.Predict(context.Background(), model.Transaction{}, "RF")
	require.Error(t, err)
	assert.Nil(t, expl)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestUploadBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-batch", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "day_42.csv", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"stats": {"total_scanned": 3, "rf_flags": 1, "xgb_flags": 2, "both_agreed": 1},
			"top_risky_transactions": [
				{"amount": 181754.5, "oldbalanceOrg": 181754.5, "XGB_Prediction": 1, "XGB_Risk_Score": 0.98, "RF_Prediction": 1},
				{"amount": 4200.0, "XGB_Prediction": 1, "RF_Prediction": 0},
				{"amount": 12.5, "XGB_Prediction": 0, "RF_Prediction": 0}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	batch, err := client.UploadBatch(context.Background(), "day_42.csv", strings.NewReader("amount,oldbalanceOrg\n1,2\n"))
	require.NoError(t, err)

	assert.Equal(t, "day_42.csv", batch.Filename)
	assert.Equal(t, 3, batch.Stats.TotalScanned)
	assert.Equal(t, 2, batch.Stats.XGBFlags)
	require.Len(t, batch.Records, 3)
	assert.Equal(t, model.PriorityHigh, batch.Records[0].Priority())
	assert.Equal(t, model.PriorityWarning, batch.Records[1].Priority())
	// Absent XGB_Risk_Score decodes to zero.
	assert.Zero(t, batch.Records[1].XGBRiskScore)
}

func TestUploadBatchRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": "Invalid CSV file"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	batch, err := client.UploadBatch(context.Background(), "bad.csv", strings.NewReader("not a csv"))
	require.Error(t, err)
	assert.Nil(t, batch)
}

func TestSaveReport(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake artifact")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/save-report", r.URL.Path)

		var report model.ReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&report))
		assert.Equal(t, "day_42.csv", report.Filename)
		assert.Equal(t, 3, report.Total)
		assert.Len(t, report.FalseAlarms, 1)

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	artifact, err := client.SaveReport(context.Background(), model.ReportRequest{
		Filename:    "day_42.csv",
		Total:       3,
		XGBFraud:    1,
		RFFraud:     1,
		FalseAlarms: []model.Transaction{{Amount: 4200}},
	})
	require.NoError(t, err)
	assert.Equal(t, pdf, artifact)
}

func TestHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 2, "scan_date": "2026-08-30 09:12:44", "filename": "b.csv", "total_scanned": 10, "fraud_found_xgb": 3, "fraud_found_rf": 2},
			{"id": 1, "scan_date": "2026-08-29 17:03:01", "filename": "a.csv", "total_scanned": 5, "fraud_found_xgb": 1, "fraud_found_rf": 1}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.History(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b.csv", records[0].Filename)
	assert.Equal(t, 3, records[0].FraudXGB)
}

func TestDashboardStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard-stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_scans": 4,
			"total_tx": 1200,
			"total_fraud": 37,
			"trend_data": [
				{"name": "2026-08-29", "XGBoost": 12, "RandomForest": 9},
				{"name": "2026-08-30", "XGBoost": 25, "RandomForest": 14}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalScans)
	require.Len(t, stats.TrendData, 2)
	assert.Equal(t, 25, stats.TrendData[1].XGBoost)
}
