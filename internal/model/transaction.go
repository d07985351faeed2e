// Package model defines the core data types shared across the application.
package model

// Transaction represents a single scored transaction row from a batch scan.
// Field names mirror the scoring service's wire format. A transaction is
// immutable once ingested; its identity within a batch is its positional
// index, which is never reassigned even when a filtered view hides rows.
type Transaction struct {
	Amount         float64 `json:"amount"`
	OldBalanceOrg  float64 `json:"oldbalanceOrg"`
	NewBalanceOrig float64 `json:"newbalanceOrig"`
	OldBalanceDest float64 `json:"oldbalanceDest"`
	NewBalanceDest float64 `json:"newbalanceDest"`

	RFPrediction  int     `json:"RF_Prediction"`
	RFRiskScore   float64 `json:"RF_Risk_Score"`
	XGBPrediction int     `json:"XGB_Prediction"`
	// XGBRiskScore may be absent in service responses; zero means unscored.
	XGBRiskScore  float64 `json:"XGB_Risk_Score"`
}

// ScanStats holds the aggregate counters for one batch scan.
// TotalScanned, RFFlags and BothAgreed are fixed at ingestion; XGBFlags is
// decremented (floored at zero) when an analyst confirms a false alarm.
type ScanStats struct {
	TotalScanned int `json:"total_scanned"`
	RFFlags      int `json:"rf_flags"`
	XGBFlags     int `json:"xgb_flags"`
	BothAgreed   int `json:"both_agreed"`
}

// Batch is the ordered result of one batch scan. Length and record order
// are fixed for the lifetime of the upload; a new upload replaces the
// whole batch along with its stats and review state.
type Batch struct {
	Filename string
	Records  []Transaction
	Stats    ScanStats
}
