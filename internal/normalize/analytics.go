package normalize

import (
	"fmt"
	"strconv"

	"github.com/ripclass/lcopilot/internal/model"
)

// Penalty weights for the compliance score heuristic. A critical issue
// costs six times a minor one.
const (
	criticalPenalty = 30
	majorPenalty    = 20
	minorPenalty    = 5
)

// BuildAnalytics derives the compliance analytics for one validation run.
// Upstream analytics fields are trusted when present; gaps are filled from
// the summary and the normalized documents. The compliance score is clamped
// to [0, 100] unconditionally, including scores taken from upstream.
func BuildAnalytics(rawAnalytics map[string]any, summary model.ProcessingSummary, documents []model.Document) model.AnalyticsSummary {
	if rawAnalytics == nil {
		rawAnalytics = map[string]any{}
	}

	counts := summary.SeverityBreakdown
	// A present-but-empty issue_counts object counts as absent, same as the
	// summary's severity_breakdown handling: {} carries no counts to trust.
	if raw := mapField(rawAnalytics, "issue_counts"); raw != nil {
		counts = model.SeverityBreakdown{
			Critical: preferNumeric(raw, "critical", 0),
			Major:    preferNumeric(raw, "major", 0),
			Medium:   preferNumeric(raw, "medium", 0),
			Minor:    preferNumeric(raw, "minor", 0),
		}
	}

	score, trusted := numeric(rawAnalytics["compliance_score"])
	if !trusted {
		score = 100 - counts.Critical*criticalPenalty - counts.Major*majorPenalty - counts.Minor*minorPenalty
	}

	return model.AnalyticsSummary{
		ComplianceScore: clampScore(score),
		IssueCounts:     counts,
		DocumentRisk:    documentRisk(rawAnalytics, documents),
	}
}

// documentRisk trusts a non-empty upstream risk list, defaulting unspecified
// risk levels to low; otherwise it derives risk per document from the shared
// issue-load thresholds.
func documentRisk(rawAnalytics map[string]any, documents []model.Document) []model.DocumentRisk {
	if rawList := listField(rawAnalytics, "document_risk"); rawList != nil {
		risks := make([]model.DocumentRisk, 0, len(rawList))
		for i, entry := range rawList {
			raw := asMap(entry)

			documentID := firstString(raw, "document_id", "documentId", "id")
			if documentID == "" {
				documentID = strconv.Itoa(i)
			}

			filename := firstString(raw, "filename", "name")
			if filename == "" {
				filename = fmt.Sprintf("Document %d", i+1)
			}

			risk := model.RiskLevel(firstString(raw, "risk"))
			switch risk {
			case model.RiskLow, model.RiskMedium, model.RiskHigh:
			default:
				risk = model.RiskLow
			}

			risks = append(risks, model.DocumentRisk{
				DocumentID: documentID,
				Filename:   filename,
				Risk:       risk,
			})
		}
		return risks
	}

	risks := make([]model.DocumentRisk, 0, len(documents))
	for _, doc := range documents {
		risks = append(risks, model.DocumentRisk{
			DocumentID: doc.DocumentID,
			Filename:   doc.Filename,
			Risk:       deriveRisk(doc.IssuesCount),
		})
	}
	return risks
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
