package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripclass/lcopilot/internal/model"
)

func TestBuildValidationResponseEmptyPayload(t *testing.T) {
	result := BuildValidationResponse(map[string]any{})

	require.NotNil(t, result)
	assert.Empty(t, result.JobID)
	assert.Empty(t, result.Documents)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.Summary.TotalDocuments)
	assert.Equal(t, 0, result.Summary.TotalIssues)
	assert.Equal(t, 100, result.Analytics.ComplianceScore)
	assert.Empty(t, result.Analytics.DocumentRisk)
}

func TestBuildValidationResponseNilPayload(t *testing.T) {
	result := BuildValidationResponse(nil)

	require.NotNil(t, result)
	assert.Equal(t, 100, result.Analytics.ComplianceScore)
}

func TestBuildValidationResponseSingleDocument(t *testing.T) {
	raw := map[string]any{
		"documents": []any{
			map[string]any{
				"document_type":     "bill_of_lading",
				"issues_count":      float64(1),
				"extraction_status": "success",
			},
		},
	}

	result := BuildValidationResponse(raw)

	require.Len(t, result.Documents, 1)
	assert.Equal(t, model.StatusWarning, result.Documents[0].DerivedStatus)
	assert.Equal(t, "Bill of Lading", result.Documents[0].DisplayType)
	assert.Equal(t, 1, result.Summary.TotalDocuments)
	assert.Equal(t, 0, result.Summary.SuccessfulExtractions)
}

func TestBuildValidationResponseSeverityScoring(t *testing.T) {
	raw := map[string]any{
		"issues": []any{
			map[string]any{"severity": "fail"},
			map[string]any{"severity": "warn"},
			map[string]any{"severity": "low"},
		},
	}

	result := BuildValidationResponse(raw)

	assert.Equal(t, model.SeverityBreakdown{Critical: 1, Major: 1, Medium: 0, Minor: 1}, result.Analytics.IssueCounts)
	assert.Equal(t, 45, result.Analytics.ComplianceScore)
}

func TestBuildValidationResponseCaseInsensitiveAttribution(t *testing.T) {
	raw := map[string]any{
		"documents": []any{
			map[string]any{"filename": "invoice.pdf", "document_type": "commercial_invoice"},
		},
		"issues": []any{
			map[string]any{"documents": []any{"Invoice.pdf"}},
		},
	}

	result := BuildValidationResponse(raw)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "Invoice.pdf", result.Issues[0].DocumentName)
	assert.Equal(t, "Commercial Invoice", result.Issues[0].DocumentType)
}

func TestBuildValidationResponseJobIDAliases(t *testing.T) {
	tests := []struct {
		raw  map[string]any
		name string
		want string
	}{
		{name: "jobId", raw: map[string]any{"jobId": "j-1"}, want: "j-1"},
		{name: "job_id", raw: map[string]any{"job_id": "j-2"}, want: "j-2"},
		{name: "request_id", raw: map[string]any{"request_id": "j-3"}, want: "j-3"},
		{
			name: "first non-empty wins",
			raw:  map[string]any{"jobId": "", "job_id": "j-4"},
			want: "j-4",
		},
		{name: "absent", raw: map[string]any{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildValidationResponse(tt.raw).JobID)
		})
	}
}

func TestBuildValidationResponseSummaryBackfill(t *testing.T) {
	raw := map[string]any{
		"structured_result": map[string]any{
			"summary": map[string]any{"total_documents": "stale"},
			"verdict": "discrepant",
		},
		"documents": []any{
			map[string]any{"filename": "a.pdf", "extraction_status": "success"},
		},
	}

	result := BuildValidationResponse(raw)

	// The computed summary is re-injected so raw-shape consumers see
	// corrected counts.
	injected, ok := result.StructuredResult["summary"].(model.ProcessingSummary)
	require.True(t, ok)
	assert.Equal(t, 1, injected.TotalDocuments)
	assert.Equal(t, "discrepant", result.StructuredResult["verdict"])

	// The caller's payload is not mutated.
	rawSummary := raw["structured_result"].(map[string]any)["summary"]
	assert.Equal(t, map[string]any{"total_documents": "stale"}, rawSummary)
}

func TestBuildValidationResponseStructuredResultFallbacks(t *testing.T) {
	raw := map[string]any{
		"structured_result": map[string]any{
			"documents": []any{
				map[string]any{"filename": "nested.pdf"},
			},
			"discrepancies": []any{
				map[string]any{"severity": "high"},
			},
			"extracted_documents": map[string]any{"nested.pdf": map[string]any{"amount": float64(1)}},
		},
	}

	result := BuildValidationResponse(raw)

	require.Len(t, result.Documents, 1)
	assert.Equal(t, "nested.pdf", result.Documents[0].Filename)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, model.SeverityCritical, result.Issues[0].Severity)
	assert.Contains(t, result.ExtractedData, "nested.pdf")
}

func TestBuildValidationResponseExtractedDataPrefersTopLevel(t *testing.T) {
	raw := map[string]any{
		"extracted_data": map[string]any{"top": true},
		"structured_result": map[string]any{
			"extracted_documents": map[string]any{"nested": true},
		},
	}

	result := BuildValidationResponse(raw)
	assert.Contains(t, result.ExtractedData, "top")
}

func TestBuildValidationResponseTotality(t *testing.T) {
	// Hostile payloads: every recognized key carries the wrong shape.
	payloads := []map[string]any{
		{"documents": "nope", "issues": float64(9), "summary": []any{"x"}},
		{"documents": []any{nil, float64(1), "x"}, "issues": []any{nil}},
		{"structured_result": "not a map", "analytics": []any{}},
		{"summary": map[string]any{"severity_breakdown": "broken"}},
		{"timeline": map[string]any{}, "extracted_data": []any{}},
	}

	for i, raw := range payloads {
		result := BuildValidationResponse(raw)
		require.NotNil(t, result, "payload %d", i)
		assert.NotNil(t, result.Documents, "payload %d", i)
		assert.NotNil(t, result.Issues, "payload %d", i)
		assert.GreaterOrEqual(t, result.Analytics.ComplianceScore, 0, "payload %d", i)
		assert.LessOrEqual(t, result.Analytics.ComplianceScore, 100, "payload %d", i)
	}
}

func TestBuildValidationResponseFromJSON(t *testing.T) {
	payload := `{
		"job_id": "job-8841",
		"documents": [
			{"document_id": "d1", "filename": "lc.pdf", "document_type": "letter_of_credit", "extraction_status": "success", "issues_count": 0},
			{"document_id": "d2", "filename": "bl.pdf", "document_type": "bill_of_lading", "extraction_status": "partial", "issues_count": 4}
		],
		"issues": [
			{"rule": "UCP600-20", "severity": "high", "documents": ["bl.pdf"], "expected": "clean on board", "found": null}
		],
		"timeline": [{"stage": "extraction", "ms": 420}]
	}`

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	result := BuildValidationResponse(raw)

	assert.Equal(t, "job-8841", result.JobID)
	require.Len(t, result.Documents, 2)
	assert.Equal(t, model.StatusSuccess, result.Documents[0].DerivedStatus)
	assert.Equal(t, model.StatusError, result.Documents[1].DerivedStatus)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, model.SeverityCritical, result.Issues[0].Severity)
	assert.Equal(t, "Bill of Lading", result.Issues[0].DocumentType)
	assert.Equal(t, "—", result.Issues[0].Actual)

	assert.Equal(t, 2, result.Summary.TotalDocuments)
	assert.Equal(t, 1, result.Summary.SuccessfulExtractions)
	assert.Equal(t, 1, result.Summary.FailedExtractions)
	assert.Equal(t, 70, result.Analytics.ComplianceScore)
	require.Len(t, result.Analytics.DocumentRisk, 2)
	assert.Equal(t, model.RiskHigh, result.Analytics.DocumentRisk[1].Risk)
	assert.Len(t, result.Timeline, 1)
}
