package model

// SeverityBreakdown counts issues per severity bucket.
//
// The four-bucket shape is a legacy compatibility contract: the issue
// normalizer only ever produces critical/major/minor, so a computed Medium is
// always zero. Upstream payloads that already carry a breakdown may still
// populate it.
type SeverityBreakdown struct {
	Critical int `json:"critical"`
	Major    int `json:"major"`
	Medium   int `json:"medium"`
	Minor    int `json:"minor"`
}

// Total returns the sum across all buckets.
func (b SeverityBreakdown) Total() int {
	return b.Critical + b.Major + b.Medium + b.Minor
}

// ProcessingSummary holds the headline counts for one validation run.
//
// Counts provided by the upstream payload are trusted field-by-field;
// only absent or non-numeric fields are computed from the normalized
// documents and issues. The engine does not reconcile trusted counts
// against each other.
type ProcessingSummary struct {
	TotalDocuments        int               `json:"totalDocuments"`
	SuccessfulExtractions int               `json:"successfulExtractions"`
	FailedExtractions     int               `json:"failedExtractions"`
	TotalIssues           int               `json:"totalIssues"`
	SeverityBreakdown     SeverityBreakdown `json:"severityBreakdown"`
}
