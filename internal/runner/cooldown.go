package runner

import "time"

// CooldownReason names why a pause is taken before a unit.
type CooldownReason string

const (
	// CooldownNone means the unit starts immediately.
	CooldownNone CooldownReason = "none"
	// CooldownFrameworkSwitch means the pause separates two frameworks.
	CooldownFrameworkSwitch CooldownReason = "framework_switch"
	// CooldownRunSpacing means the pause separates runs of the same task.
	CooldownRunSpacing CooldownReason = "run_spacing"
)

// WaitDecision is the pause the controller requires before a unit starts.
type WaitDecision struct {
	Duration time.Duration
	Reason   CooldownReason
}

// CooldownController decides the pause before each unit from what ran
// last. A framework switch always wins over run spacing; the very first
// unit never waits.
type CooldownController struct {
	framework time.Duration
	run       time.Duration

	started       bool
	lastFramework string
	lastTaskID    string
}

// NewCooldownController builds a controller with the configured pauses.
func NewCooldownController(frameworkCooldown, runCooldown time.Duration) *CooldownController {
	return &CooldownController{framework: frameworkCooldown, run: runCooldown}
}

// Next reports the pause required before unit and records it as the
// most recent one. State advances even when the pause is zero.
func (c *CooldownController) Next(unit WorkUnit) WaitDecision {
	decision := c.decide(unit)
	c.started = true
	c.lastFramework = unit.Framework
	c.lastTaskID = unit.TaskID
	return decision
}

func (c *CooldownController) decide(unit WorkUnit) WaitDecision {
	if !c.started {
		return WaitDecision{Reason: CooldownNone}
	}
	if unit.Framework != c.lastFramework {
		return WaitDecision{Duration: c.framework, Reason: CooldownFrameworkSwitch}
	}
	if unit.TaskID == c.lastTaskID {
		return WaitDecision{Duration: c.run, Reason: CooldownRunSpacing}
	}
	return WaitDecision{Reason: CooldownNone}
}
