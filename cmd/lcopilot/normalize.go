package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ripclass/lcopilot/internal/common"
	"github.com/ripclass/lcopilot/internal/model"
	"github.com/ripclass/lcopilot/internal/normalize"
	"github.com/ripclass/lcopilot/internal/report"
	"github.com/ripclass/lcopilot/internal/storage"
)

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [payload.json]",
		Short: "Normalize a raw validation payload into the canonical result",
		Long: `Normalize a raw validation-backend payload into the canonical result.

Reads a JSON payload from the given file (or stdin when no file is given),
runs the normalization pipeline, and renders the report.

Examples:
  # Normalize one payload and render the report
  lcopilot normalize job-8841.json

  # Emit the canonical result as JSON
  lcopilot normalize job-8841.json --json

  # Normalize from stdin and save to history
  curl -s $API/jobs/8841/result | lcopilot normalize --save

  # Normalize every payload in a directory
  lcopilot normalize --dir ./payloads --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNormalize,
	}

	cmd.Flags().Bool("json", false, "emit the canonical result as JSON instead of a styled report")
	cmd.Flags().Bool("save", false, "save the result to the history database")
	cmd.Flags().String("dir", "", "normalize every *.json payload in a directory")

	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")
	dir, _ := cmd.Flags().GetString("dir")

	if dir != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --dir with a payload file argument")
		}
		return runNormalizeDir(cmd.Context(), dir, save)
	}

	raw, source, err := readPayload(args)
	if err != nil {
		return err
	}

	result := normalize.BuildValidationResponse(raw)
	slog.Debug("normalized payload",
		"source", source,
		"job_id", result.JobID,
		"documents", result.Summary.TotalDocuments,
		"issues", result.Summary.TotalIssues)

	if save {
		store, err := openHistory(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := saveResult(cmd.Context(), store, result); err != nil {
			return err
		}
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

// runNormalizeDir normalizes every *.json file in a directory, with a
// progress bar over the batch.
func runNormalizeDir(ctx context.Context, dir string, save bool) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("invalid directory pattern: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no payload files found in %s", dir)
	}
	sort.Strings(matches)

	bar := progressbar.NewOptions(len(matches),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Normalizing payloads..."),
	)

	var store *storage.SQLiteStorage
	if save {
		store, err = openHistory(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var failed int
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := readPayloadFile(path)
		if err != nil {
			common.LogError(err, "skipping payload", common.Fields{"path": path})
			failed++
			_ = bar.Add(1)
			continue
		}

		result := normalize.BuildValidationResponse(raw)
		if save {
			if err := saveResult(ctx, store, result); err != nil {
				common.LogError(err, "failed to save result", common.Fields{"path": path})
				failed++
			}
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	slog.Info("batch normalization complete",
		"processed", len(matches)-failed,
		"failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d payloads failed", failed, len(matches))
	}
	return nil
}

// readPayload loads the raw payload from the file argument or stdin.
func readPayload(args []string) (map[string]any, string, error) {
	if len(args) == 1 {
		raw, err := readPayloadFile(args[0])
		return raw, args[0], err
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	raw, err := decodePayload(data)
	return raw, "stdin", err
}

func readPayloadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied payload path
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return decodePayload(data)
}

// decodePayload parses the raw bytes into the loosely-typed payload shape.
// The normalizer is total over any object; non-object payloads are rejected
// here at the boundary.
func decodePayload(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, common.ErrEmptyPayload
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.NewUserError("payload must be a JSON object", fmt.Errorf("%w: %w", common.ErrInvalidPayload, err))
	}
	return raw, nil
}

// openHistory opens the history database, running migrations if needed.
func openHistory(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return store, nil
}

// saveResult persists one canonical result to the history database.
func saveResult(ctx context.Context, store *storage.SQLiteStorage, result *model.ValidationResult) error {
	if result.JobID == "" {
		return common.NewUserError("cannot save a result without a job id", nil)
	}

	if err := store.SaveResult(ctx, result); err != nil {
		return err
	}

	slog.Info("saved validation result", "job_id", result.JobID)
	return nil
}
