package live

import "reasonbench/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventUnit delivers a work unit status update.
	EventUnit
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	RunID   string
	Model   string
	Units   []runner.WorkUnit
	Unit    runner.UnitEvent
	Summary runner.Summary
}
