package model

// Severity is the normalized three-level classification of an issue's impact.
type Severity string

const (
	// SeverityCritical indicates a discrepancy that blocks compliance.
	SeverityCritical Severity = "critical"
	// SeverityMajor indicates a significant discrepancy that needs review.
	SeverityMajor Severity = "major"
	// SeverityMinor indicates a low-impact discrepancy or advisory finding.
	SeverityMinor Severity = "minor"
)

// Issue is the canonical view of one detected compliance discrepancy.
type Issue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// RawPriority preserves the upstream severity/priority string for display.
	RawPriority string `json:"rawPriority"`

	Severity Severity `json:"severity"`

	// DocumentNames lists every document the issue references, in upstream
	// order. May be empty.
	DocumentNames []string `json:"documentNames"`

	// DocumentName and DocumentType are a best-effort single attribution:
	// the first referenced document, resolved case-insensitively against the
	// normalized document list.
	DocumentName string `json:"documentName,omitempty"`
	DocumentType string `json:"documentType,omitempty"`

	Expected   string `json:"expected"`
	Actual     string `json:"actual"`
	Suggestion string `json:"suggestion"`

	Field        string `json:"field,omitempty"`
	UCPReference string `json:"ucpReference,omitempty"`
}
