// Package report renders canonical validation results for the terminal:
// summary cards, an issue board grouped by severity, a document grid, and
// the compliance analytics. All values come from the canonical result; the
// formatter never re-derives statuses or scores.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ripclass/lcopilot/internal/model"
)

// severityOrder fixes the display order of issue groups.
var severityOrder = []model.Severity{
	model.SeverityCritical,
	model.SeverityMajor,
	model.SeverityMinor,
}

// CLIFormatter renders validation results for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

// FormatSummary creates the full report view for one validation result.
func (f *CLIFormatter) FormatSummary(result *model.ValidationResult) string {
	if result == nil {
		return f.styles.Error.Render("No validation result available")
	}

	sections := []string{
		f.formatHeader(result),
		f.formatComplianceScore(result.Analytics.ComplianceScore),
		f.formatProcessingSummary(result.Summary),
	}

	if issueBoard := f.formatIssueBoard(result); issueBoard != "" {
		sections = append(sections, issueBoard)
	}

	if grid := f.formatDocumentGrid(result.Documents); grid != "" {
		sections = append(sections, grid)
	}

	if risks := f.formatDocumentRisk(result.Analytics.DocumentRisk); risks != "" {
		sections = append(sections, risks)
	}

	return strings.Join(sections, "\n\n")
}

// FormatIssue formats a single issue card for detailed display.
func (f *CLIFormatter) FormatIssue(issue model.Issue) string {
	style := f.styles.severityStyle(issue.Severity)

	header := style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(string(issue.Severity)), f.issueTitle(issue)))
	parts := []string{header}

	if issue.Description != "" {
		parts = append(parts, f.styles.Normal.Render(issue.Description))
	}

	var meta []string
	if issue.DocumentName != "" {
		doc := issue.DocumentName
		if issue.DocumentType != "" {
			doc = fmt.Sprintf("%s (%s)", doc, issue.DocumentType)
		}
		meta = append(meta, "Document: "+doc)
	}
	if issue.Field != "" {
		meta = append(meta, "Field: "+issue.Field)
	}
	if issue.UCPReference != "" {
		meta = append(meta, "Reference: "+issue.UCPReference)
	}
	if len(meta) > 0 {
		parts = append(parts, f.styles.Subtle.Render(strings.Join(meta, "  ·  ")))
	}

	parts = append(parts,
		fmt.Sprintf("Expected: %s", issue.Expected),
		fmt.Sprintf("Found:    %s", issue.Actual),
	)
	if issue.Suggestion != "—" && issue.Suggestion != "" {
		parts = append(parts, f.styles.Info.Render("Fix: "+issue.Suggestion))
	}

	return f.styles.IssueBox.Render(strings.Join(parts, "\n"))
}

func (f *CLIFormatter) formatHeader(result *model.ValidationResult) string {
	title := f.styles.Title.Render("📋 LC Validation Report")
	if result.JobID == "" {
		return title
	}
	return title + "\n" + f.styles.Subtitle.Render("Job: "+result.JobID)
}

// formatComplianceScore renders the 0-100 score with a progress bar.
func (f *CLIFormatter) formatComplianceScore(score int) string {
	var scoreStyle lipgloss.Style
	switch {
	case score >= 90:
		scoreStyle = f.styles.Success
	case score >= 70:
		scoreStyle = f.styles.Warning
	default:
		scoreStyle = f.styles.Error
	}

	barWidth := 30
	filledWidth := barWidth * score / 100
	bar := strings.Repeat("█", filledWidth) + strings.Repeat("░", barWidth-filledWidth)

	return scoreStyle.Render(fmt.Sprintf("Compliance Score: %d/100", score)) + "\n" + scoreStyle.Render(bar)
}

func (f *CLIFormatter) formatProcessingSummary(summary model.ProcessingSummary) string {
	title := f.styles.Subtitle.Render("Processing Summary:")

	lines := []string{
		fmt.Sprintf("Documents:   %d total, %s, %s",
			summary.TotalDocuments,
			f.styles.Success.Render(fmt.Sprintf("%d extracted", summary.SuccessfulExtractions)),
			f.styles.Error.Render(fmt.Sprintf("%d failed", summary.FailedExtractions))),
		fmt.Sprintf("Issues:      %d total", summary.TotalIssues),
	}

	breakdown := summary.SeverityBreakdown
	var buckets []string
	if breakdown.Critical > 0 {
		buckets = append(buckets, f.styles.Critical.Render(fmt.Sprintf("%d critical", breakdown.Critical)))
	}
	if breakdown.Major > 0 {
		buckets = append(buckets, f.styles.Major.Render(fmt.Sprintf("%d major", breakdown.Major)))
	}
	if breakdown.Medium > 0 {
		buckets = append(buckets, f.styles.Warning.Render(fmt.Sprintf("%d medium", breakdown.Medium)))
	}
	if breakdown.Minor > 0 {
		buckets = append(buckets, f.styles.Minor.Render(fmt.Sprintf("%d minor", breakdown.Minor)))
	}
	if len(buckets) > 0 {
		lines = append(lines, "Severity:    "+strings.Join(buckets, ", "))
	}

	return title + "\n" + f.styles.Box.Render(strings.Join(lines, "\n"))
}

// formatIssueBoard groups issue cards by severity, critical first.
func (f *CLIFormatter) formatIssueBoard(result *model.ValidationResult) string {
	if len(result.Issues) == 0 {
		return f.styles.Success.Render("✅ No discrepancies found")
	}

	grouped := result.IssuesBySeverity()

	var sections []string
	for _, severity := range severityOrder {
		issues := grouped[severity]
		if len(issues) == 0 {
			continue
		}

		header := f.styles.severityStyle(severity).Render(
			fmt.Sprintf("%s (%d)", strings.ToUpper(string(severity)), len(issues)))
		sections = append(sections, header)

		for _, issue := range issues {
			sections = append(sections, f.FormatIssue(issue))
		}
	}

	title := f.styles.Subtitle.Render("Discrepancies:")
	return title + "\n" + strings.Join(sections, "\n")
}

// formatDocumentGrid renders one row per document with its derived status.
func (f *CLIFormatter) formatDocumentGrid(documents []model.Document) string {
	if len(documents) == 0 {
		return ""
	}

	title := f.styles.Subtitle.Render("Documents:")

	nameWidth := 28
	typeWidth := 24
	statusWidth := 10

	headerStyle := f.styles.Subtle.Bold(true)
	header := fmt.Sprintf("%-*s %-*s %-*s %s",
		nameWidth, "Filename",
		typeWidth, "Type",
		statusWidth, "Status",
		"Issues")
	rows := []string{
		headerStyle.Render(header),
		f.styles.Subtle.Render(strings.Repeat("─", len(header))),
	}

	for _, doc := range documents {
		status := f.styles.statusStyle(doc.DerivedStatus).Render(fmt.Sprintf("%-*s", statusWidth, doc.DerivedStatus))
		row := fmt.Sprintf("%-*s %-*s %s %d",
			nameWidth, truncate(doc.Filename, nameWidth),
			typeWidth, truncate(doc.DisplayType, typeWidth),
			status,
			doc.IssuesCount)
		rows = append(rows, row)
	}

	return title + "\n" + strings.Join(rows, "\n")
}

func (f *CLIFormatter) formatDocumentRisk(risks []model.DocumentRisk) string {
	if len(risks) == 0 {
		return ""
	}

	title := f.styles.Subtitle.Render("Document Risk:")

	lines := make([]string, 0, len(risks))
	for _, risk := range risks {
		var style lipgloss.Style
		switch risk.Risk {
		case model.RiskHigh:
			style = f.styles.Error
		case model.RiskMedium:
			style = f.styles.Warning
		default:
			style = f.styles.Success
		}
		lines = append(lines, fmt.Sprintf("%s %s", style.Render(fmt.Sprintf("%-6s", risk.Risk)), risk.Filename))
	}

	return title + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) issueTitle(issue model.Issue) string {
	if issue.Title != "" {
		return issue.Title
	}
	return issue.ID
}

// truncate shortens s to at most width runes, ending with an ellipsis.
// Slicing by rune keeps multibyte filenames valid UTF-8.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
