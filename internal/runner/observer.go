package runner

import "time"

// UnitEventType identifies a work unit status update for observers.
type UnitEventType string

const (
	// UnitQueued marks a unit known but not yet started.
	UnitQueued UnitEventType = "queued"
	// UnitCoolingDown marks a pause taken before the unit starts.
	UnitCoolingDown UnitEventType = "cooling_down"
	// UnitCalling marks an active model call.
	UnitCalling UnitEventType = "calling"
	// UnitRetrying marks a backoff sleep before another attempt.
	UnitRetrying UnitEventType = "retrying"
	// UnitScoring marks validation of the model response.
	UnitScoring UnitEventType = "scoring"
	// UnitPassed marks a scored response at or above the pass threshold.
	UnitPassed UnitEventType = "passed"
	// UnitFailed marks a scored response below the pass threshold.
	UnitFailed UnitEventType = "failed"
	// UnitErrored marks a unit whose call never produced a response.
	UnitErrored UnitEventType = "errored"
)

// UnitEvent carries a single status update for a work unit.
type UnitEvent struct {
	Framework string
	TaskID    string
	Run       int
	Type      UnitEventType
	Reason    CooldownReason
	Wait      time.Duration
	Attempt   int
	Score     float64
	ErrorKind string
	Error     string
	// RetryHint is the server-suggested retry delay parsed from a quota
	// error, when the response carried one. Informational only.
	RetryHint time.Duration
	EmittedAt time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, model string, units []WorkUnit)
	// OnUnitEvent delivers a unit status update.
	OnUnitEvent(event UnitEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnRunStart(string, string, []WorkUnit) {}
func (NopObserver) OnUnitEvent(UnitEvent)                 {}
func (NopObserver) OnRunEnd(Results)                      {}
