package live

import (
	"fmt"

	"reasonbench/internal/runner"
)

// InitRows seeds one queued row per planned work unit.
func InitRows(state State, units []runner.WorkUnit) State {
	rows := make([]UnitRow, len(units))
	for i, unit := range units {
		rows[i] = UnitRow{
			Index:     i,
			Framework: unit.Framework,
			TaskID:    unit.TaskID,
			Run:       unit.Run,
			Status:    runner.UnitQueued,
		}
	}
	state.Rows = rows
	state.Counts = recount(rows)
	return state
}

// Reduce applies a unit event to the UI state.
func Reduce(state State, event runner.UnitEvent) State {
	index := rowIndex(state.Rows, event)
	if index < 0 {
		return state
	}
	state.Rows[index] = applyUnitEvent(state.Rows[index], event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// rowIndex finds the row matching the event's unit.
func rowIndex(rows []UnitRow, event runner.UnitEvent) int {
	for i, row := range rows {
		if row.Framework == event.Framework && row.TaskID == event.TaskID && row.Run == event.Run {
			return i
		}
	}
	return -1
}

// applyUnitEvent updates a row with the given event.
func applyUnitEvent(row UnitRow, event runner.UnitEvent) UnitRow {
	row.Status = event.Type
	switch event.Type {
	case runner.UnitCoolingDown:
		row.Reason = event.Reason
		row.Wait = event.Wait
	case runner.UnitCalling:
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	case runner.UnitRetrying:
		row.Retries++
		row.Wait = event.Wait
		row.ErrorKind = event.ErrorKind
	case runner.UnitPassed, runner.UnitFailed:
		row.Score = event.Score
		row.FinishedAt = event.EmittedAt
	case runner.UnitErrored:
		row.ErrorKind = event.ErrorKind
		row.Error = event.Error
		row.FinishedAt = event.EmittedAt
	}
	return row
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status runner.UnitEventType) bool {
	switch status {
	case runner.UnitPassed, runner.UnitFailed, runner.UnitErrored:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []UnitRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.UnitQueued:
			counts.Queued++
		case runner.UnitCoolingDown:
			counts.CoolingDown++
		case runner.UnitCalling:
			counts.Calling++
		case runner.UnitRetrying:
			counts.Retrying++
		case runner.UnitScoring:
			counts.Scoring++
		case runner.UnitPassed:
			counts.Done++
			counts.Passed++
		case runner.UnitFailed:
			counts.Done++
			counts.Failed++
		case runner.UnitErrored:
			counts.Done++
			counts.Errored++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.UnitEvent) string {
	label := unitLabel(event)
	switch event.Type {
	case runner.UnitCoolingDown:
		return fmt.Sprintf("%s cooling down %s (%s)", label, formatDuration(event.Wait), event.Reason)
	case runner.UnitRetrying:
		return fmt.Sprintf("%s retry %d after %s error (waiting %s)", label, event.Attempt, event.ErrorKind, formatDuration(event.Wait))
	case runner.UnitPassed:
		return fmt.Sprintf("%s passed (%.1f)", label, event.Score)
	case runner.UnitFailed:
		return fmt.Sprintf("%s failed (%.1f)", label, event.Score)
	case runner.UnitErrored:
		return fmt.Sprintf("%s error: %s", label, event.Error)
	}
	return ""
}

// unitLabel renders the short identity of a unit.
func unitLabel(event runner.UnitEvent) string {
	return fmt.Sprintf("%s/%s#%d", event.Framework, event.TaskID, event.Run)
}
