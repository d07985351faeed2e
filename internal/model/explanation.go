package model

// FeatureImpact is one attribution pair from the explainer, ranked by the
// service in descending absolute impact. Positive impact pushes toward
// fraud, negative away from it.
type FeatureImpact struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// Explanation is the scoring service's response for a single transaction:
// the verdict, its risk score, the ranked attribution list, and an
// optional plain-language narrative.
type Explanation struct {
	IsFraud    int             `json:"is_fraud"`
	RiskScore  float64         `json:"risk_score"`
	ModelUsed  string          `json:"model_used"`
	Message    string          `json:"message"`
	TopFactors []FeatureImpact `json:"explanation"`
	Narrative  string          `json:"ai_analysis"`
}
