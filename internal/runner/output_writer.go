package runner

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// WriteRunOutputs writes results.json, results.csv, and summary.json
// for a completed run.
func WriteRunOutputs(results Results, outputDir string) (OutputPaths, error) {
	if outputDir == "" {
		return OutputPaths{}, fmt.Errorf("output directory is required")
	}
	paths, err := NewOutputPaths(outputDir, results.RunID)
	if err != nil {
		return OutputPaths{}, err
	}
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return OutputPaths{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(paths.ResultsPath(), results); err != nil {
		return OutputPaths{}, err
	}
	if err := writeCSV(paths.CSVPath(), results.Records); err != nil {
		return OutputPaths{}, err
	}
	if err := writeJSON(paths.SummaryPath(), results.Summary); err != nil {
		return OutputPaths{}, err
	}
	return paths, nil
}

// writeJSON writes a payload as pretty JSON.
func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

var csvHeader = []string{
	"framework", "task_id", "task_type", "run",
	"success", "passed", "score", "reasoning_steps",
	"attempts", "prompt_tokens", "response_tokens", "total_tokens",
	"duration_seconds", "started_at", "error_kind", "error",
}

// writeCSV writes one flat row per result record.
func writeCSV(path string, records []ResultRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.Framework,
			record.TaskID,
			record.TaskType,
			strconv.Itoa(record.Run),
			strconv.FormatBool(record.Success),
			strconv.FormatBool(record.Passed),
			strconv.FormatFloat(record.Score, 'f', 1, 64),
			strconv.Itoa(record.ReasoningSteps),
			strconv.Itoa(record.Attempts),
			strconv.Itoa(record.PromptTokens),
			strconv.Itoa(record.ResponseTokens),
			strconv.Itoa(record.TotalTokens),
			strconv.FormatFloat(record.DurationSeconds, 'f', 3, 64),
			record.StartedAt.UTC().Format(time.RFC3339),
			record.ErrorKind,
			sanitizeCSVField(record.Error),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// sanitizeCSVField flattens newlines so error text stays on one row.
func sanitizeCSVField(value string) string {
	return strings.ReplaceAll(strings.ReplaceAll(value, "\r", " "), "\n", " ")
}
