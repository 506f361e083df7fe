package normalize

import (
	"fmt"
	"strings"

	"github.com/ripclass/lcopilot/internal/model"
)

// severityVocabulary maps the upstream severity/priority vocabulary onto the
// canonical three-level model. Anything outside the table defaults to minor.
var severityVocabulary = map[string]model.Severity{
	"critical": model.SeverityCritical,
	"fail":     model.SeverityCritical,
	"error":    model.SeverityCritical,
	"high":     model.SeverityCritical,
	"major":    model.SeverityMajor,
	"warn":     model.SeverityMajor,
	"warning":  model.SeverityMajor,
	"medium":   model.SeverityMajor,
	"minor":    model.SeverityMinor,
	"low":      model.SeverityMinor,
}

// normalizeSeverity maps a raw severity/priority string to the canonical
// vocabulary, defaulting unknown values to minor.
func normalizeSeverity(raw string) model.Severity {
	if severity, ok := severityVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return severity
	}
	return model.SeverityMinor
}

// NormalizeIssues maps raw per-issue records into canonical issue cards,
// attributing each issue to its first referenced document via a
// case-insensitive lookup against the normalized document list.
func NormalizeIssues(rawIssues []any, documents []model.Document) []model.Issue {
	lookup := buildDocumentLookup(documents)

	issues := make([]model.Issue, 0, len(rawIssues))
	for i, entry := range rawIssues {
		raw := asMap(entry)

		id := firstString(raw, "id", "rule")
		if id == "" {
			id = fmt.Sprintf("issue-%d", i)
		}

		rawPriority := firstString(raw, "priority", "severity")
		documentNames := stringList(firstPresent(raw, "documents", "document_names"))

		issue := model.Issue{
			ID:            id,
			Title:         firstString(raw, "title"),
			Description:   firstString(raw, "description"),
			RawPriority:   rawPriority,
			Severity:      normalizeSeverity(rawPriority),
			DocumentNames: documentNames,
			Expected:      coerceText(firstPresent(raw, "expected", "expected_value")),
			Actual:        coerceText(firstPresent(raw, "found", "actual", "actual_value")),
			Suggestion:    coerceText(firstPresent(raw, "suggested_fix", "recommendation")),
			Field:         firstString(raw, "field"),
		}

		if ref := firstPresent(raw, "reference", "ucp_reference"); ref != nil {
			issue.UCPReference = coerceText(ref)
		}

		if len(documentNames) > 0 {
			issue.DocumentName = documentNames[0]
			if doc, ok := lookup[strings.ToLower(documentNames[0])]; ok {
				issue.DocumentType = doc.DisplayType
			}
		}

		issues = append(issues, issue)
	}

	return issues
}

// buildDocumentLookup indexes documents by every name a raw issue might
// reference them with: filename, display type, and raw type key, all
// lowercased. Last write wins on collision; attribution is best-effort.
func buildDocumentLookup(documents []model.Document) map[string]model.Document {
	lookup := make(map[string]model.Document, len(documents)*3)
	for _, doc := range documents {
		for _, key := range []string{doc.Filename, doc.DisplayType, doc.TypeKey} {
			if key != "" {
				lookup[strings.ToLower(key)] = doc
			}
		}
	}
	return lookup
}

// firstPresent returns the value of the first alias key present in the map,
// preserving its raw shape for downstream coercion.
func firstPresent(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
