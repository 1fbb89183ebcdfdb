package duckdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"reasonbench/internal/runner"
)

// IngestResults stores a completed run and all of its records. The whole
// ingest happens in one transaction so a run is either fully present or
// absent.
func IngestResults(ctx context.Context, db *sql.DB, results runner.Results) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if strings.TrimSpace(results.RunID) == "" {
		return errors.New("duckdb: run id is empty")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, model, frameworks, started_at, finished_at,
		                   units_total, units_succeeded, units_passed, pass_rate,
		                   average_score, tokens_total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.RunID,
		results.Model,
		strings.Join(results.Frameworks, ","),
		results.StartedAt,
		results.FinishedAt,
		results.Summary.UnitsTotal,
		results.Summary.UnitsSucceeded,
		results.Summary.UnitsPassed,
		results.Summary.PassRate,
		results.Summary.AverageScore,
		results.Summary.TokensTotal,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, record := range results.Records {
		issues, err := encodeIssues(record.Issues)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO results (result_id, run_id, framework, task_id, task_type,
			                      run_number, success, passed, score, issues,
			                      reasoning_steps, attempts, prompt_tokens,
			                      response_tokens, total_tokens, duration_seconds,
			                      started_at, error_kind, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			results.RunID,
			record.Framework,
			record.TaskID,
			record.TaskType,
			record.Run,
			record.Success,
			record.Passed,
			record.Score,
			issues,
			record.ReasoningSteps,
			record.Attempts,
			record.PromptTokens,
			record.ResponseTokens,
			record.TotalTokens,
			record.DurationSeconds,
			record.StartedAt,
			nullable(record.ErrorKind),
			nullable(record.Error),
		); err != nil {
			return fmt.Errorf("insert result %s/%s/%d: %w", record.Framework, record.TaskID, record.Run, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

func encodeIssues(issues []string) (any, error) {
	if len(issues) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(issues)
	if err != nil {
		return nil, fmt.Errorf("encode issues: %w", err)
	}
	return string(data), nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
