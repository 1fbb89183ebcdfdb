package framework

import (
	"fmt"
	"sort"

	"reasonbench/internal/task"
)

// Framework builds prompts for one reasoning strategy and parses the
// structure back out of the model's response.
type Framework interface {
	// ID is the short identifier used in plans, flags, and results.
	ID() string
	// Name is the human-readable strategy name.
	Name() string
	// BuildPrompt wraps a task prompt in the strategy's template.
	BuildPrompt(t task.Task) string
	// ParseTrace extracts reasoning steps and the final answer from a response.
	ParseTrace(response string) Trace
}

// Trace is the parsed structure of one framework response.
type Trace struct {
	Steps       []string
	FinalAnswer string
}

var registry = map[string]Framework{
	"react": reactFramework{},
	"cot":   cotFramework{},
	"tot":   totFramework{},
}

// ByID returns the framework registered under id.
func ByID(id string) (Framework, error) {
	fw, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown framework %q (available: %v)", id, IDs())
	}
	return fw, nil
}

// IDs returns all registered framework identifiers in stable order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
