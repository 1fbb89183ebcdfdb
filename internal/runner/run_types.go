package runner

import (
	"time"

	"reasonbench/internal/llm"
	"reasonbench/internal/task"
)

// ProviderFactory builds a model provider for a given model name.
type ProviderFactory func(model string) (llm.Provider, error)

// RunDependencies allows injecting factories and clocks for a run.
type RunDependencies struct {
	ProviderFactory ProviderFactory
	RunID           func() (string, error)
	Now             func() time.Time
	Sleep           func(time.Duration)
}

// RunParams configures a run invocation.
type RunParams struct {
	Suite     task.Suite
	OutputDir string
	Observer  RunObserver
	Deps      RunDependencies
}
