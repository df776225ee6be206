package risk

import "github.com/vigyantra/docscan/internal/model"

// Per-finding weights and per-category caps. The caps sum to 100, which
// bounds the total score without a separate clamp.
const (
	// MalwareWeight is the score contribution per heuristic finding.
	MalwareWeight = 15

	// MalwareCap is the maximum heuristic contribution.
	MalwareCap = 40

	// PrivacyWeight is the score contribution per privacy issue.
	PrivacyWeight = 5

	// PrivacyCap is the maximum privacy contribution.
	PrivacyCap = 30

	// LinkWeight is the score contribution per link finding.
	LinkWeight = 10

	// LinkCap is the maximum link contribution.
	LinkCap = 30
)

// Level thresholds on the total score.
const (
	// HighThreshold is the minimum score for a high risk level.
	HighThreshold = 70

	// MediumThreshold is the minimum score for a medium risk level.
	MediumThreshold = 30
)

// Assess computes the aggregated risk from per-scanner finding counts.
// Counts are finding counts, not severity-weighted sums; a category's
// contribution saturates at its cap.
func Assess(malwareFindings, privacyIssues, linkFindings int) *model.RiskAssessment {
	breakdown := model.RiskBreakdown{
		Malware: saturate(malwareFindings*MalwareWeight, MalwareCap),
		Privacy: saturate(privacyIssues*PrivacyWeight, PrivacyCap),
		Links:   saturate(linkFindings*LinkWeight, LinkCap),
	}

	score := breakdown.Malware + breakdown.Privacy + breakdown.Links

	return &model.RiskAssessment{
		Score:     score,
		Level:     Level(score),
		Breakdown: breakdown,
	}
}

// Level maps a total score onto a risk level.
func Level(score int) model.Severity {
	switch {
	case score >= HighThreshold:
		return model.SeverityHigh
	case score >= MediumThreshold:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// saturate clamps v to at most limit.
func saturate(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
