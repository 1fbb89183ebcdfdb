package runner

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func sampleResults() Results {
	startedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := []ResultRecord{
		{Framework: "react", TaskID: "code_001", TaskType: "code_generation", Run: 1,
			Success: true, Passed: true, Score: 85, Attempts: 1, TotalTokens: 100,
			DurationSeconds: 2.5, StartedAt: startedAt},
		{Framework: "react", TaskID: "code_001", TaskType: "code_generation", Run: 2,
			Attempts: 4, ErrorKind: "quota", Error: "api error: http 429\nquota exceeded",
			StartedAt: startedAt},
	}
	return Results{
		RunID:      "20260801T120000Z-abcd1234",
		Model:      "gemini-2.0-flash",
		Frameworks: []string{"react"},
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
		Records:    records,
		Summary:    summarize(records),
	}
}

// TestWriteRunOutputs verifies the three output files and the CSV shape.
func TestWriteRunOutputs(t *testing.T) {
	results := sampleResults()
	paths, err := WriteRunOutputs(results, t.TempDir())
	if err != nil {
		t.Fatalf("write outputs: %v", err)
	}

	data, err := os.ReadFile(paths.ResultsPath())
	if err != nil {
		t.Fatalf("read results.json: %v", err)
	}
	var decoded Results
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode results.json: %v", err)
	}
	if decoded.RunID != results.RunID || len(decoded.Records) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}

	file, err := os.Open(paths.CSVPath())
	if err != nil {
		t.Fatalf("open results.csv: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read results.csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2", len(rows))
	}
	if rows[0][0] != "framework" || rows[1][0] != "react" {
		t.Fatalf("rows = %v", rows[:2])
	}
	errorField := rows[2][len(csvHeader)-1]
	if errorField != "api error: http 429 quota exceeded" {
		t.Fatalf("error field = %q", errorField)
	}

	summaryData, err := os.ReadFile(paths.SummaryPath())
	if err != nil {
		t.Fatalf("read summary.json: %v", err)
	}
	var summary Summary
	if err := json.Unmarshal(summaryData, &summary); err != nil {
		t.Fatalf("decode summary.json: %v", err)
	}
	if summary.UnitsTotal != 2 || summary.UnitsPassed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

// TestWriteRunOutputsRequiresDir verifies the output directory is mandatory.
func TestWriteRunOutputsRequiresDir(t *testing.T) {
	if _, err := WriteRunOutputs(sampleResults(), ""); err == nil {
		t.Fatalf("expected error")
	}
}
