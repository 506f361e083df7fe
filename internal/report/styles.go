package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ripclass/lcopilot/internal/cli"
	"github.com/ripclass/lcopilot/internal/model"
)

// Styles contains all styling definitions for validation report formatting.
type Styles struct {
	// Base styles from CLI package
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	// Report-specific styles
	Box      lipgloss.Style
	Critical lipgloss.Style
	Major    lipgloss.Style
	Minor    lipgloss.Style
	IssueBox lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		// Import base styles from CLI package
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	// Severity-specific styles
	s.Critical = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.ErrorColor)

	s.Major = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.WarningColor)

	s.Minor = lipgloss.NewStyle().
		Foreground(cli.SubtleColor)

	s.IssueBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.InfoColor).
		Padding(0, 1)

	return s
}

// severityStyle returns the style for a canonical severity.
func (s *Styles) severityStyle(severity model.Severity) lipgloss.Style {
	switch severity {
	case model.SeverityCritical:
		return s.Critical
	case model.SeverityMajor:
		return s.Major
	default:
		return s.Minor
	}
}

// statusStyle returns the style for a derived document status.
func (s *Styles) statusStyle(status model.DerivedStatus) lipgloss.Style {
	switch status {
	case model.StatusSuccess:
		return s.Success
	case model.StatusWarning:
		return s.Warning
	default:
		return s.Error
	}
}
