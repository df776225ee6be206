package model

// RiskAssessment is the aggregated risk computed from all scanner outputs.
// It is derived data: computed once by the aggregator and not independently
// mutable afterwards.
type RiskAssessment struct {
	// Score is the bounded additive score, 0-100.
	Score int `json:"score"`

	// Level is derived from Score: high >= 70, medium >= 30, else low.
	Level Severity `json:"level"`

	// Breakdown contains the per-category contributions that sum to Score.
	Breakdown RiskBreakdown `json:"breakdown"`
}

// RiskBreakdown contains the saturated per-category score contributions.
type RiskBreakdown struct {
	// Malware is the heuristic scanner contribution (0-40).
	Malware int `json:"malware"`

	// Privacy is the privacy scanner contribution (0-30).
	Privacy int `json:"privacy"`

	// Links is the link scanner contribution (0-30).
	Links int `json:"links"`
}
