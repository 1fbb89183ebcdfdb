package framework

import (
	"fmt"
	"strings"

	"reasonbench/internal/task"
)

// reactFramework alternates Thought, Action, and Observation steps.
type reactFramework struct{}

func (reactFramework) ID() string   { return "react" }
func (reactFramework) Name() string { return "ReAct" }

func (reactFramework) BuildPrompt(t task.Task) string {
	return fmt.Sprintf(`You are solving a %s task. Use the ReAct framework: alternate between Thought and Action steps.

Task: %s

Follow this exact format:
Thought: [Your reasoning about what to do next]
Action: [The specific action you're taking]
Observation: [What you learned from the action]

Continue this Thought-Action-Observation cycle until you reach a final answer.
When you have the complete solution, end with:
Final Answer: [Your complete solution]

Important guidelines:
- For code generation: Think through the algorithm step by step, then implement incrementally
- For itinerary planning: Consider constraints, calculate distances/times, optimize step by step
- For procedure structuring: Analyze the vague instructions, identify key steps, organize logically

Begin:
`, t.Type, t.Prompt)
}

var reactSections = sectionPattern(`thought|action|observation|final answer`)

func (reactFramework) ParseTrace(response string) Trace {
	sections := splitSections(response, reactSections)
	var trace Trace
	var cycle []string
	flush := func() {
		if len(cycle) > 0 {
			trace.Steps = append(trace.Steps, strings.Join(cycle, " | "))
			cycle = nil
		}
	}
	for _, sec := range sections {
		switch sec.label {
		case "thought":
			flush()
			cycle = append(cycle, "Thought: "+sec.body)
		case "action":
			cycle = append(cycle, "Action: "+sec.body)
		case "observation":
			cycle = append(cycle, "Observation: "+sec.body)
		case "final answer":
			flush()
			trace.FinalAnswer = sec.body
		}
	}
	flush()
	if trace.FinalAnswer == "" {
		trace.FinalAnswer = trailingContent(response, func(line string) bool {
			return strings.HasPrefix(line, "thought:") ||
				strings.HasPrefix(line, "action:") ||
				strings.HasPrefix(line, "observation:")
		})
	}
	return trace
}
