package normalize

import "github.com/ripclass/lcopilot/internal/model"

// Issue-load thresholds shared by document status derivation and document
// risk classification. Kept in one place so the two views cannot drift if
// the thresholds are tuned.
const (
	heavyIssueLoad = 3
	anyIssueLoad   = 1
)

// issueLoadTier classifies an issue count against the shared thresholds.
type issueLoadTier int

const (
	loadNone issueLoadTier = iota
	loadElevated
	loadHeavy
)

func classifyIssueLoad(count int) issueLoadTier {
	switch {
	case count >= heavyIssueLoad:
		return loadHeavy
	case count >= anyIssueLoad:
		return loadElevated
	default:
		return loadNone
	}
}

// deriveStatus computes the canonical document status from the extraction
// status and issue count. An explicit error status or a heavy issue load
// always wins over partial/pending signals.
func deriveStatus(extractionStatus string, issuesCount int) model.DerivedStatus {
	tier := classifyIssueLoad(issuesCount)
	if extractionStatus == "error" || tier == loadHeavy {
		return model.StatusError
	}
	if tier == loadElevated || extractionStatus == "partial" || extractionStatus == "pending" {
		return model.StatusWarning
	}
	return model.StatusSuccess
}

// deriveRisk computes the analytics risk level for a document from its
// issue count, using the same thresholds as status derivation.
func deriveRisk(issuesCount int) model.RiskLevel {
	switch classifyIssueLoad(issuesCount) {
	case loadHeavy:
		return model.RiskHigh
	case loadElevated:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
