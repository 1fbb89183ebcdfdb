package task

// Type identifies a task category; each type has its own validator.
type Type string

const (
	// TypeCodeGeneration asks for a complete runnable program.
	TypeCodeGeneration Type = "code_generation"
	// TypeItineraryPlanning asks for a constrained multi-day travel plan.
	TypeItineraryPlanning Type = "itinerary_planning"
	// TypeProcedureStructuring asks for vague instructions turned into steps.
	TypeProcedureStructuring Type = "procedure_structuring"
)

// Task is one benchmark problem presented to every framework.
type Task struct {
	ID       string   `yaml:"id"`
	Type     Type     `yaml:"type"`
	Title    string   `yaml:"title"`
	Prompt   string   `yaml:"prompt"`
	Criteria []string `yaml:"criteria"`
}

// Suite is an ordered set of tasks.
type Suite struct {
	Version int    `yaml:"version"`
	Tasks   []Task `yaml:"tasks"`
}

// ByID returns the task with the given id.
func (s Suite) ByID(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Filter returns the suite restricted to the given ids, preserving suite order.
// An empty id list returns the suite unchanged.
func (s Suite) Filter(ids []string) Suite {
	if len(ids) == 0 {
		return s
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := Suite{Version: s.Version}
	for _, t := range s.Tasks {
		if want[t.ID] {
			out.Tasks = append(out.Tasks, t)
		}
	}
	return out
}
