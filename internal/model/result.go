package model

// ValidationResult is the single canonical object assembled from one raw
// backend payload. It is constructed once and immutable thereafter; any
// change means discarding and rebuilding from the raw payload.
type ValidationResult struct {
	// StructuredResult passes through the raw structured result from the
	// validation backend, with the computed summary re-injected so legacy
	// consumers of the raw shape see the corrected counts too.
	StructuredResult map[string]any `json:"structuredResult,omitempty"`

	// ExtractedData passes through the per-document extraction output.
	ExtractedData map[string]any `json:"extractedData,omitempty"`

	// Timeline passes through processing timeline entries, if any.
	Timeline []any `json:"timeline,omitempty"`

	JobID string `json:"jobId"`

	Documents []Document `json:"documents"`
	Issues    []Issue    `json:"issues"`

	Summary   ProcessingSummary `json:"summary"`
	Analytics AnalyticsSummary  `json:"analytics"`
}

// IssuesBySeverity groups the result's issues into severity buckets,
// preserving order within each bucket.
func (r *ValidationResult) IssuesBySeverity() map[Severity][]Issue {
	grouped := make(map[Severity][]Issue, 3)
	for _, issue := range r.Issues {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}
	return grouped
}
