package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ripclass/lcopilot/internal/common"
	"github.com/ripclass/lcopilot/internal/model"
)

// ResultRecord is a history listing entry for one stored validation result.
type ResultRecord struct {
	CreatedAt       time.Time
	JobID           string
	TotalDocuments  int
	TotalIssues     int
	ComplianceScore int
}

// SaveResult persists one canonical validation result. Saving the same job
// id again replaces the previous record; a rebuilt result supersedes the old
// one by definition.
func (s *SQLiteStorage) SaveResult(ctx context.Context, result *model.ValidationResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("%w: result", ErrNilParameter)
	}
	if err := validateString(result.JobID, "jobID"); err != nil {
		return err
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO validation_results (
			job_id, total_documents, successful_extractions, failed_extractions,
			total_issues, critical_issues, major_issues, minor_issues,
			compliance_score, result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(job_id) DO UPDATE SET
			total_documents = excluded.total_documents,
			successful_extractions = excluded.successful_extractions,
			failed_extractions = excluded.failed_extractions,
			total_issues = excluded.total_issues,
			critical_issues = excluded.critical_issues,
			major_issues = excluded.major_issues,
			minor_issues = excluded.minor_issues,
			compliance_score = excluded.compliance_score,
			result_json = excluded.result_json,
			created_at = CURRENT_TIMESTAMP`,
		result.JobID,
		result.Summary.TotalDocuments,
		result.Summary.SuccessfulExtractions,
		result.Summary.FailedExtractions,
		result.Summary.TotalIssues,
		result.Summary.SeverityBreakdown.Critical,
		result.Summary.SeverityBreakdown.Major,
		result.Summary.SeverityBreakdown.Minor,
		result.Analytics.ComplianceScore,
		string(encoded),
	)
	if err != nil {
		return fmt.Errorf("failed to save validation result: %w", err)
	}

	return nil
}

// GetResult loads one stored validation result by job id.
func (s *SQLiteStorage) GetResult(ctx context.Context, jobID string) (*model.ValidationResult, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(jobID, "jobID"); err != nil {
		return nil, err
	}

	var encoded string
	err := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM validation_results WHERE job_id = ?`, jobID,
	).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", common.ErrResultNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load validation result: %w", err)
	}

	var result model.ValidationResult
	if err := json.Unmarshal([]byte(encoded), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}

	return &result, nil
}

// ListResults returns history entries ordered newest first.
func (s *SQLiteStorage) ListResults(ctx context.Context, limit int) ([]ResultRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT job_id, total_documents, total_issues, compliance_score, created_at
		FROM validation_results
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ResultRecord
	for rows.Next() {
		var record ResultRecord
		if err := rows.Scan(
			&record.JobID,
			&record.TotalDocuments,
			&record.TotalIssues,
			&record.ComplianceScore,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result records: %w", err)
	}

	return records, nil
}
