package model

// RiskLevel is the derived per-document risk classification used by
// analytics visualizations.
type RiskLevel string

const (
	// RiskLow indicates a document with no detected issues.
	RiskLow RiskLevel = "low"
	// RiskMedium indicates a document with at least one issue.
	RiskMedium RiskLevel = "medium"
	// RiskHigh indicates a document with a heavy issue load.
	RiskHigh RiskLevel = "high"
)

// DocumentRisk pairs a document with its risk classification.
type DocumentRisk struct {
	DocumentID string    `json:"documentId"`
	Filename   string    `json:"filename"`
	Risk       RiskLevel `json:"risk"`
}

// AnalyticsSummary carries the derived compliance analytics for one run.
type AnalyticsSummary struct {
	// ComplianceScore is a 0-100 heuristic penalizing issues by severity
	// weight. Always clamped to [0, 100], including scores taken from
	// upstream.
	ComplianceScore int `json:"complianceScore"`

	IssueCounts SeverityBreakdown `json:"issueCounts"`

	DocumentRisk []DocumentRisk `json:"documentRisk"`
}
