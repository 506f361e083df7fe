package normalize

import "github.com/ripclass/lcopilot/internal/model"

// BuildSummary derives the processing summary for one validation run.
// Upstream-provided numeric fields are trusted individually; only absent or
// non-numeric fields fall back to values computed from the normalized
// documents and issues, so one stale upstream field does not poison the
// others.
func BuildSummary(rawSummary map[string]any, documents []model.Document, issues []model.Issue) model.ProcessingSummary {
	if rawSummary == nil {
		rawSummary = map[string]any{}
	}

	breakdown := severityBreakdown(rawSummary, issues)

	successful := 0
	for _, doc := range documents {
		if doc.DerivedStatus == model.StatusSuccess {
			successful++
		}
	}

	total := preferNumeric(rawSummary, "total_documents", len(documents))
	success := preferNumeric(rawSummary, "successful_extractions", successful)
	failed := preferNumeric(rawSummary, "failed_extractions", max(0, total-success))

	return model.ProcessingSummary{
		TotalDocuments:        total,
		SuccessfulExtractions: success,
		FailedExtractions:     failed,
		TotalIssues:           preferNumeric(rawSummary, "total_issues", len(issues)),
		SeverityBreakdown:     breakdown,
	}
}

// severityBreakdown trusts an upstream breakdown when present, otherwise
// counts the normalized issues. A present-but-empty breakdown object counts
// as absent: an upstream that sends {} has not actually broken issues down,
// so the computed counts are the more faithful reading. A computed breakdown
// never populates the medium bucket; the three-level severity model has no
// medium output and the bucket exists only for upstream compatibility.
func severityBreakdown(rawSummary map[string]any, issues []model.Issue) model.SeverityBreakdown {
	if raw := mapField(rawSummary, "severity_breakdown"); raw != nil {
		return model.SeverityBreakdown{
			Critical: preferNumeric(raw, "critical", 0),
			Major:    preferNumeric(raw, "major", 0),
			Medium:   preferNumeric(raw, "medium", 0),
			Minor:    preferNumeric(raw, "minor", 0),
		}
	}

	var breakdown model.SeverityBreakdown
	for _, issue := range issues {
		switch issue.Severity {
		case model.SeverityCritical:
			breakdown.Critical++
		case model.SeverityMajor:
			breakdown.Major++
		case model.SeverityMinor:
			breakdown.Minor++
		}
	}
	return breakdown
}
