package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ripclass/lcopilot/internal/cli"
	"github.com/ripclass/lcopilot/internal/report"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously normalized validation results",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored validation results, newest first",
		RunE:  runHistoryList,
	}

	cmd.Flags().Int("limit", 20, "maximum number of results to list")

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListResults(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("No validation results stored yet."))
		return nil
	}

	header := fmt.Sprintf("%-24s %-20s %6s %7s %7s", "Job", "Normalized At", "Docs", "Issues", "Score")
	lines := []string{
		cli.BoldStyle.Render(header),
		cli.SubtleStyle.Render(strings.Repeat("─", len(header))),
	}

	for _, record := range records {
		score := fmt.Sprintf("%d", record.ComplianceScore)
		switch {
		case record.ComplianceScore >= 90:
			score = cli.SuccessStyle.Render(score)
		case record.ComplianceScore >= 70:
			score = cli.WarningStyle.Render(score)
		default:
			score = cli.ErrorStyle.Render(score)
		}

		lines = append(lines, fmt.Sprintf("%-24s %-20s %6d %7d %7s",
			record.JobID,
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			record.TotalDocuments,
			record.TotalIssues,
			score))
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return nil
}

func historyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Render one stored validation result",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}

	cmd.Flags().Bool("json", false, "emit the canonical result as JSON instead of a styled report")

	return cmd
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := openHistory(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	result, err := store.GetResult(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	formatter := report.NewCLIFormatter()
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(result))
	return nil
}
