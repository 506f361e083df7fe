// Package model defines the canonical validation-result types consumed by
// every rendering surface. Downstream consumers read statuses, severities,
// and scores from these types only; the raw backend payload is never
// re-derived past the normalizer boundary.
package model

// DerivedStatus is the computed per-document status.
type DerivedStatus string

const (
	// StatusSuccess indicates the document extracted cleanly with no issues.
	StatusSuccess DerivedStatus = "success"
	// StatusWarning indicates a partial extraction or a light issue load.
	StatusWarning DerivedStatus = "warning"
	// StatusError indicates a failed extraction or a heavy issue load.
	StatusError DerivedStatus = "error"
)

// Document is the canonical view of one presented trade document.
//
// DerivedStatus is a pure function of (ExtractionStatus, IssuesCount) and is
// never taken from the upstream payload, so the status shown on document
// grids cannot drift from the issue counts shown next to it.
type Document struct {
	// ExtractedFields is an opaque pass-through of whatever the extraction
	// backend pulled out of the document. Not subject to canonical invariants.
	ExtractedFields map[string]any `json:"extractedFields,omitempty"`

	// DocumentID is a stable identity, unique within one result. Falls back
	// to the positional index when the upstream record carries no id.
	DocumentID string `json:"documentId"`

	Filename string `json:"filename"`

	// DisplayType is the human label for the document type, e.g.
	// "Bill of Lading".
	DisplayType string `json:"displayType"`

	// TypeKey preserves the raw upstream type code for lookups.
	TypeKey string `json:"typeKey"`

	// ExtractionStatus is the upstream free-text status, lowercased.
	ExtractionStatus string `json:"extractionStatus"`

	DerivedStatus DerivedStatus `json:"derivedStatus"`

	IssuesCount int `json:"issuesCount"`
}
