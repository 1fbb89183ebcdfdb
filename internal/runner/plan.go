package runner

import (
	"fmt"

	"reasonbench/internal/framework"
	"reasonbench/internal/task"
)

// WorkUnit is one scheduled model call: a framework applied to a task
// for a specific run number.
type WorkUnit struct {
	Framework string
	TaskID    string
	Run       int
}

// BuildPlan expands frameworks, tasks, and runs-per-task into the
// ordered unit list: framework outermost, task next, run innermost.
// Run numbers are 1-based.
func BuildPlan(frameworks []string, suite task.Suite, runsPerTask int) ([]WorkUnit, error) {
	if runsPerTask < 1 {
		return nil, fmt.Errorf("runs per task must be at least 1, got %d", runsPerTask)
	}
	if len(frameworks) == 0 {
		return nil, fmt.Errorf("at least one framework is required")
	}
	if len(suite.Tasks) == 0 {
		return nil, fmt.Errorf("at least one task is required")
	}
	seen := make(map[string]bool, len(frameworks))
	for _, id := range frameworks {
		if _, err := framework.ByID(id); err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate framework %q", id)
		}
		seen[id] = true
	}

	units := make([]WorkUnit, 0, len(frameworks)*len(suite.Tasks)*runsPerTask)
	for _, fw := range frameworks {
		for _, item := range suite.Tasks {
			for run := 1; run <= runsPerTask; run++ {
				units = append(units, WorkUnit{Framework: fw, TaskID: item.ID, Run: run})
			}
		}
	}
	return units, nil
}
