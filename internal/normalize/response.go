// Package normalize reconciles raw validation-backend payloads into the
// canonical result contract that every view reads from.
//
// The pipeline runs four stages in strict order: document normalization,
// issue normalization, summary aggregation, analytics aggregation. Each
// stage is a pure function of its explicit inputs and is total over
// arbitrary, partially-valid payloads: missing, null, or mistyped fields
// degrade to documented defaults, never to a panic or an error. Because no
// stage reads or writes shared state, concurrent calls from independent
// request handlers are safe without locks.
package normalize

import "github.com/ripclass/lcopilot/internal/model"

// BuildValidationResponse assembles the canonical result for one raw
// payload. Field-name aliases are resolved here and in the stage
// normalizers; nothing past this boundary inspects the raw shape.
//
// The assembly never fails on structurally-absent fields; handing it an
// empty map yields a complete result with zero counts and a full compliance
// score. It does not validate business correctness, only shape.
func BuildValidationResponse(raw map[string]any) *model.ValidationResult {
	if raw == nil {
		raw = map[string]any{}
	}

	structured := structuredResult(raw)

	documents := NormalizeDocuments(rawStageList(raw, structured, "documents"))
	issues := NormalizeIssues(rawStageList(raw, structured, "issues", "discrepancies"), documents)
	summary := BuildSummary(rawStageMap(raw, structured, "summary"), documents, issues)
	analytics := BuildAnalytics(rawStageMap(raw, structured, "analytics"), summary, documents)

	// Legacy consumers read counts off the raw structured result; re-inject
	// the computed summary so they see the same numbers as canonical views.
	structured["summary"] = summary

	extractedData := mapField(raw, "extracted_data")
	if extractedData == nil {
		extractedData = mapField(structured, "extracted_documents")
	}

	return &model.ValidationResult{
		JobID:            firstString(raw, "jobId", "job_id", "request_id"),
		Documents:        documents,
		Issues:           issues,
		Summary:          summary,
		Analytics:        analytics,
		StructuredResult: structured,
		ExtractedData:    extractedData,
		Timeline:         asList(raw["timeline"]),
	}
}

// structuredResult shallow-copies the raw structured result so the summary
// backfill never mutates the caller's payload.
func structuredResult(raw map[string]any) map[string]any {
	source := mapField(raw, "structured_result", "structuredResult")
	structured := make(map[string]any, len(source)+1)
	for k, v := range source {
		structured[k] = v
	}
	return structured
}

// rawStageList resolves a stage's input list, preferring the top-level
// payload and falling back to the structured result. Both placements occur
// across historical payload shapes.
func rawStageList(raw, structured map[string]any, keys ...string) []any {
	if l := listField(raw, keys...); l != nil {
		return l
	}
	return listField(structured, keys...)
}

// rawStageMap resolves a stage's input map with the same fallback chain.
func rawStageMap(raw, structured map[string]any, keys ...string) map[string]any {
	if m := mapField(raw, keys...); m != nil {
		return m
	}
	return mapField(structured, keys...)
}
