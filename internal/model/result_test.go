package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssuesBySeverity(t *testing.T) {
	result := &ValidationResult{
		Issues: []Issue{
			{ID: "a", Severity: SeverityCritical},
			{ID: "b", Severity: SeverityMinor},
			{ID: "c", Severity: SeverityCritical},
		},
	}

	grouped := result.IssuesBySeverity()

	assert.Len(t, grouped[SeverityCritical], 2)
	assert.Len(t, grouped[SeverityMinor], 1)
	assert.Empty(t, grouped[SeverityMajor])

	// Order is preserved within a bucket.
	assert.Equal(t, "a", grouped[SeverityCritical][0].ID)
	assert.Equal(t, "c", grouped[SeverityCritical][1].ID)
}

func TestSeverityBreakdownTotal(t *testing.T) {
	breakdown := SeverityBreakdown{Critical: 1, Major: 2, Medium: 3, Minor: 4}
	assert.Equal(t, 10, breakdown.Total())

	assert.Zero(t, SeverityBreakdown{}.Total())
}
