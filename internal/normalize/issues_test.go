package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripclass/lcopilot/internal/model"
)

func TestNormalizeSeverity(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Severity
	}{
		{raw: "critical", want: model.SeverityCritical},
		{raw: "fail", want: model.SeverityCritical},
		{raw: "error", want: model.SeverityCritical},
		{raw: "high", want: model.SeverityCritical},
		{raw: "major", want: model.SeverityMajor},
		{raw: "warn", want: model.SeverityMajor},
		{raw: "warning", want: model.SeverityMajor},
		{raw: "medium", want: model.SeverityMajor},
		{raw: "minor", want: model.SeverityMinor},
		{raw: "low", want: model.SeverityMinor},
		{raw: "CRITICAL", want: model.SeverityCritical},
		{raw: "  High  ", want: model.SeverityCritical},
		{raw: "unknown", want: model.SeverityMinor},
		{raw: "", want: model.SeverityMinor},
		{raw: "urgent", want: model.SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSeverity(tt.raw))
		})
	}
}

func TestNormalizeIssues(t *testing.T) {
	documents := NormalizeDocuments([]any{
		map[string]any{
			"document_id":   "doc-1",
			"filename":      "invoice.pdf",
			"document_type": "commercial_invoice",
		},
	})

	t.Run("full issue with document attribution", func(t *testing.T) {
		raw := []any{
			map[string]any{
				"rule":          "UCP600-18b",
				"title":         "Invoice amount exceeds credit",
				"description":   "The invoice amount is greater than the LC amount.",
				"severity":      "fail",
				"documents":     []any{"invoice.pdf"},
				"expected":      "USD 50,000.00",
				"found":         "USD 52,100.00",
				"suggested_fix": "Amend the invoice or request an LC amendment.",
				"field":         "invoice_amount",
				"reference":     "UCP 600 Art. 18(b)",
			},
		}

		issues := NormalizeIssues(raw, documents)
		require.Len(t, issues, 1)

		issue := issues[0]
		assert.Equal(t, "UCP600-18b", issue.ID)
		assert.Equal(t, "Invoice amount exceeds credit", issue.Title)
		assert.Equal(t, "fail", issue.RawPriority)
		assert.Equal(t, model.SeverityCritical, issue.Severity)
		assert.Equal(t, []string{"invoice.pdf"}, issue.DocumentNames)
		assert.Equal(t, "invoice.pdf", issue.DocumentName)
		assert.Equal(t, "Commercial Invoice", issue.DocumentType)
		assert.Equal(t, "USD 50,000.00", issue.Expected)
		assert.Equal(t, "USD 52,100.00", issue.Actual)
		assert.Equal(t, "Amend the invoice or request an LC amendment.", issue.Suggestion)
		assert.Equal(t, "invoice_amount", issue.Field)
		assert.Equal(t, "UCP 600 Art. 18(b)", issue.UCPReference)
	})

	t.Run("empty issue gets defaults", func(t *testing.T) {
		issues := NormalizeIssues([]any{map[string]any{}}, nil)
		require.Len(t, issues, 1)

		issue := issues[0]
		assert.Equal(t, "issue-0", issue.ID)
		assert.Equal(t, model.SeverityMinor, issue.Severity)
		assert.Empty(t, issue.DocumentNames)
		assert.Empty(t, issue.DocumentName)
		assert.Equal(t, "—", issue.Expected)
		assert.Equal(t, "—", issue.Actual)
		assert.Equal(t, "—", issue.Suggestion)
		assert.Empty(t, issue.UCPReference)
	})

	t.Run("case-insensitive document lookup", func(t *testing.T) {
		raw := []any{
			map[string]any{"documents": []any{"Invoice.PDF"}},
		}

		issues := NormalizeIssues(raw, documents)
		require.Len(t, issues, 1)
		assert.Equal(t, "Invoice.PDF", issues[0].DocumentName)
		assert.Equal(t, "Commercial Invoice", issues[0].DocumentType)
	})

	t.Run("lookup by display type and type key", func(t *testing.T) {
		byDisplay := NormalizeIssues([]any{
			map[string]any{"documents": []any{"commercial invoice"}},
		}, documents)
		require.Len(t, byDisplay, 1)
		assert.Equal(t, "Commercial Invoice", byDisplay[0].DocumentType)

		byKey := NormalizeIssues([]any{
			map[string]any{"documents": []any{"COMMERCIAL_INVOICE"}},
		}, documents)
		require.Len(t, byKey, 1)
		assert.Equal(t, "Commercial Invoice", byKey[0].DocumentType)
	})

	t.Run("scalar document reference is wrapped", func(t *testing.T) {
		raw := []any{
			map[string]any{"document_names": "invoice.pdf"},
		}

		issues := NormalizeIssues(raw, documents)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"invoice.pdf"}, issues[0].DocumentNames)
	})

	t.Run("unresolved reference keeps name without type", func(t *testing.T) {
		raw := []any{
			map[string]any{"documents": []any{"ghost.pdf"}},
		}

		issues := NormalizeIssues(raw, documents)
		require.Len(t, issues, 1)
		assert.Equal(t, "ghost.pdf", issues[0].DocumentName)
		assert.Empty(t, issues[0].DocumentType)
	})

	t.Run("legacy value aliases", func(t *testing.T) {
		raw := []any{
			map[string]any{
				"id":             "i-1",
				"priority":       "warn",
				"expected_value": "clean on board",
				"actual_value":   []any{"claused", ""},
				"recommendation": map[string]any{"value": "obtain a clean bill"},
				"ucp_reference":  "ISBP 745",
			},
		}

		issues := NormalizeIssues(raw, nil)
		require.Len(t, issues, 1)

		issue := issues[0]
		assert.Equal(t, "i-1", issue.ID)
		assert.Equal(t, model.SeverityMajor, issue.Severity)
		assert.Equal(t, "clean on board", issue.Expected)
		assert.Equal(t, "claused", issue.Actual)
		assert.Equal(t, "obtain a clean bill", issue.Suggestion)
		assert.Equal(t, "ISBP 745", issue.UCPReference)
	})

	t.Run("malformed entries are tolerated", func(t *testing.T) {
		issues := NormalizeIssues([]any{nil, "garbage", float64(3)}, nil)
		require.Len(t, issues, 3)
		assert.Equal(t, "issue-0", issues[0].ID)
		assert.Equal(t, "issue-2", issues[2].ID)
	})
}
