package live

import (
	"time"

	"reasonbench/internal/runner"
)

// UnitRow holds UI state for a single work unit.
type UnitRow struct {
	Index      int
	Framework  string
	TaskID     string
	Run        int
	Status     runner.UnitEventType
	Reason     runner.CooldownReason
	Wait       time.Duration
	Retries    int
	Score      float64
	ErrorKind  string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued      int
	CoolingDown int
	Calling     int
	Retrying    int
	Scoring     int
	Done        int
	Passed      int
	Failed      int
	Errored     int
}

// State captures the live UI state for an experiment run.
type State struct {
	RunID     string
	Model     string
	StartedAt time.Time
	LastEvent string
	Rows      []UnitRow
	Counts    StatusCounts
	Finished  bool
	Summary   runner.Summary
}
