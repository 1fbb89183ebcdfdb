package live

import (
	"testing"
	"time"

	"reasonbench/internal/runner"
)

func plannedState() State {
	return InitRows(State{}, []runner.WorkUnit{
		{Framework: "react", TaskID: "code_001", Run: 1},
		{Framework: "react", TaskID: "code_001", Run: 2},
		{Framework: "cot", TaskID: "code_001", Run: 1},
	})
}

// event builds a UnitEvent for testing.
func event(framework string, run int, kind runner.UnitEventType, when time.Time) runner.UnitEvent {
	return runner.UnitEvent{
		Framework: framework,
		TaskID:    "code_001",
		Run:       run,
		Type:      kind,
		EmittedAt: when,
	}
}

// TestInitRowsSeedsQueuedUnits verifies the plan becomes queued rows.
func TestInitRowsSeedsQueuedUnits(t *testing.T) {
	state := plannedState()
	if len(state.Rows) != 3 {
		t.Fatalf("rows = %d", len(state.Rows))
	}
	if state.Counts.Queued != 3 {
		t.Fatalf("queued = %d", state.Counts.Queued)
	}
	if state.Rows[2].Framework != "cot" || state.Rows[2].Status != runner.UnitQueued {
		t.Fatalf("row = %+v", state.Rows[2])
	}
}

// TestReduceUnitLifecycle verifies core status transitions are recorded.
func TestReduceUnitLifecycle(t *testing.T) {
	start := time.Now()
	state := plannedState()
	state = Reduce(state, event("react", 1, runner.UnitCalling, start))
	state = Reduce(state, event("react", 1, runner.UnitScoring, start))
	done := event("react", 1, runner.UnitPassed, start.Add(2*time.Second))
	done.Score = 82.5
	state = Reduce(state, done)

	row := state.Rows[0]
	if row.Status != runner.UnitPassed || row.Score != 82.5 {
		t.Fatalf("row = %+v", row)
	}
	if row.FinishedAt.Sub(row.StartedAt) != 2*time.Second {
		t.Fatalf("duration = %v", row.FinishedAt.Sub(row.StartedAt))
	}
	if state.Counts.Passed != 1 || state.Counts.Done != 1 || state.Counts.Queued != 2 {
		t.Fatalf("counts = %+v", state.Counts)
	}
}

// TestReduceRetryingIncrementsCount verifies retry tracking and footer text.
func TestReduceRetryingIncrementsCount(t *testing.T) {
	state := plannedState()
	retry := event("react", 1, runner.UnitRetrying, time.Now())
	retry.Attempt = 1
	retry.ErrorKind = "quota"
	retry.Wait = 15 * time.Second
	state = Reduce(state, retry)
	retry.Attempt = 2
	state = Reduce(state, retry)

	if state.Rows[0].Retries != 2 {
		t.Fatalf("retries = %d", state.Rows[0].Retries)
	}
	if state.Counts.Retrying != 1 {
		t.Fatalf("counts = %+v", state.Counts)
	}
	if state.LastEvent == "" {
		t.Fatalf("expected last event message")
	}
}

// TestReduceCoolingDown verifies pause reason and duration are shown.
func TestReduceCoolingDown(t *testing.T) {
	state := plannedState()
	cooling := event("cot", 1, runner.UnitCoolingDown, time.Now())
	cooling.Reason = runner.CooldownFrameworkSwitch
	cooling.Wait = time.Minute
	state = Reduce(state, cooling)

	row := state.Rows[2]
	if row.Status != runner.UnitCoolingDown || row.Reason != runner.CooldownFrameworkSwitch {
		t.Fatalf("row = %+v", row)
	}
	if state.Counts.CoolingDown != 1 {
		t.Fatalf("counts = %+v", state.Counts)
	}
}

// TestReduceErroredRecordsCause verifies error kind and message land on the row.
func TestReduceErroredRecordsCause(t *testing.T) {
	state := plannedState()
	errored := event("react", 2, runner.UnitErrored, time.Now())
	errored.ErrorKind = "fatal"
	errored.Error = "api error: http 400"
	state = Reduce(state, errored)

	row := state.Rows[1]
	if row.ErrorKind != "fatal" || row.Error == "" {
		t.Fatalf("row = %+v", row)
	}
	if state.Counts.Errored != 1 || state.Counts.Done != 1 {
		t.Fatalf("counts = %+v", state.Counts)
	}
}

// TestReduceIgnoresUnknownUnit verifies events for unplanned units are dropped.
func TestReduceIgnoresUnknownUnit(t *testing.T) {
	state := plannedState()
	state = Reduce(state, event("tot", 1, runner.UnitCalling, time.Now()))
	if state.Counts.Calling != 0 {
		t.Fatalf("counts = %+v", state.Counts)
	}
}
