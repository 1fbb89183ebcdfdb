package framework

import (
	"fmt"
	"strings"

	"reasonbench/internal/task"
)

// cotFramework reasons through linear numbered steps.
type cotFramework struct{}

func (cotFramework) ID() string   { return "cot" }
func (cotFramework) Name() string { return "Chain-of-Thought" }

func (cotFramework) BuildPrompt(t task.Task) string {
	return fmt.Sprintf(`You are solving a %s task. Use Chain-of-Thought reasoning: break down the problem into clear, logical steps.

Task: %s

Think through this step by step:

Step 1: [Understand the problem and identify key requirements]
Step 2: [Break down the problem into smaller components]
Step 3: [Plan your approach or algorithm]
Step 4: [Implement/work through the first part]
Step 5: [Continue with subsequent parts]
...
Step N: [Complete the solution and verify]

Final Solution: [Your complete answer]

Guidelines for each task type:
- Code Generation: Analyze requirements → Design algorithm → Implement incrementally → Test logic
- Itinerary Planning: Parse constraints → Research options → Calculate costs/times → Optimize route
- Procedure Structuring: Identify core objectives → Break into logical steps → Sequence properly → Add details

Let's work through this systematically:
`, t.Type, t.Prompt)
}

var cotSections = sectionPattern(`step\s*\d+|final solution|final answer|solution|answer`)

func (cotFramework) ParseTrace(response string) Trace {
	sections := splitSections(response, cotSections)
	var trace Trace
	for _, sec := range sections {
		label := normalizeLabel(sec.label)
		switch {
		case strings.HasPrefix(label, "step"):
			number := strings.TrimSpace(strings.TrimPrefix(label, "step"))
			trace.Steps = append(trace.Steps, "Step "+number+": "+sec.body)
		case trace.FinalAnswer == "":
			trace.FinalAnswer = sec.body
		}
	}
	if len(trace.Steps) == 0 {
		trace.Steps = paragraphSteps(response)
	}
	if trace.FinalAnswer == "" {
		trace.FinalAnswer = trailingContent(response, func(line string) bool {
			return strings.HasPrefix(line, "step")
		})
	}
	return trace
}

// paragraphSteps falls back to paragraph splitting when a response ignores
// the numbered-step format.
func paragraphSteps(response string) []string {
	var steps []string
	for _, block := range strings.Split(strings.TrimSpace(response), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			steps = append(steps, block)
		}
	}
	return steps
}
