package model

// ReportRequest is the audit submission payload for the report service.
// ConfirmedFrauds and FalseAlarms are bounded prefixes of the batch in
// original order; the counters reflect the session state at build time.
type ReportRequest struct {
	Filename        string        `json:"filename"`
	Total           int           `json:"total"`
	XGBFraud        int           `json:"xgb_fraud"`
	RFFraud         int           `json:"rf_fraud"`
	ConfirmedFrauds []Transaction `json:"confirmed_frauds"`
	FalseAlarms     []Transaction `json:"false_alarms"`
}

// ScanRecord is one entry of the service's scan history.
type ScanRecord struct {
	ID           int    `json:"id"`
	ScanDate     string `json:"scan_date"`
	Filename     string `json:"filename"`
	TotalScanned int    `json:"total_scanned"`
	FraudXGB     int    `json:"fraud_found_xgb"`
	FraudRF      int    `json:"fraud_found_rf"`
}

// TrendPoint is one scan's flag counts by model, keyed by scan date.
type TrendPoint struct {
	Name         string `json:"name"`
	XGBoost      int    `json:"XGBoost"`
	RandomForest int    `json:"RandomForest"`
}

// DashboardStats aggregates the service's historical scan data.
type DashboardStats struct {
	TotalScans int          `json:"total_scans"`
	TotalTx    int          `json:"total_tx"`
	TotalFraud int          `json:"total_fraud"`
	TrendData  []TrendPoint `json:"trend_data"`
}
