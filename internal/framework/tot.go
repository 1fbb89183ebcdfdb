package framework

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"reasonbench/internal/task"
)

// totBranches is the number of candidate approaches the model is asked to explore.
const totBranches = 3

// totFramework explores several approaches, rates them, and executes the best.
type totFramework struct{}

func (totFramework) ID() string   { return "tot" }
func (totFramework) Name() string { return "Tree-of-Thoughts" }

func (totFramework) BuildPrompt(t task.Task) string {
	return fmt.Sprintf(`You are solving a %s task using Tree-of-Thoughts reasoning. Explore multiple approaches and select the best one.

Task: %s

Follow this structure:

APPROACH GENERATION:
Generate %d different approaches to solve this problem:

Approach 1: [Describe first potential method]
Approach 2: [Describe second potential method]
Approach 3: [Describe third potential method]

APPROACH EVALUATION:
Evaluate each approach:

Approach 1 Assessment: [Pros, cons, feasibility - Rate 1-10]
Approach 2 Assessment: [Pros, cons, feasibility - Rate 1-10]
Approach 3 Assessment: [Pros, cons, feasibility - Rate 1-10]

BEST APPROACH SELECTION:
Selected Approach: [Choose the highest-rated approach and explain why]

DETAILED EXECUTION:
Now implement the selected approach step by step:
Step 1: [First implementation step]
Step 2: [Second implementation step]
...
Step N: [Final step]

Final Solution: [Complete solution using the best approach]

Task-specific considerations:
- Code Generation: Consider different algorithms, data structures, complexity trade-offs
- Itinerary Planning: Explore different route options, transportation modes, optimization criteria
- Procedure Structuring: Try different organizational frameworks, sequencing approaches

Begin exploration:
`, t.Type, t.Prompt, totBranches)
}

var totSections = sectionPattern(`approach\s*\d+\s*assessment|approach\s*\d+|selected approach|step\s*\d+|final solution|final answer|complete solution|solution`)

func (totFramework) ParseTrace(response string) Trace {
	sections := splitSections(response, totSections)
	var trace Trace
	for _, sec := range sections {
		label := normalizeLabel(sec.label)
		switch {
		case strings.HasPrefix(label, "approach") && strings.HasSuffix(label, "assessment"):
			num := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(label, "approach"), "assessment"))
			trace.Steps = append(trace.Steps, "Evaluated Approach "+num+": "+sec.body)
		case strings.HasPrefix(label, "approach"):
			num := strings.TrimSpace(strings.TrimPrefix(label, "approach"))
			trace.Steps = append(trace.Steps, "Generated Approach "+num+": "+sec.body)
		case label == "selected approach":
			trace.Steps = append(trace.Steps, "Selected Best Approach: "+sec.body)
		case strings.HasPrefix(label, "step"):
			num := strings.TrimSpace(strings.TrimPrefix(label, "step"))
			trace.Steps = append(trace.Steps, "Execution Step "+num+": "+sec.body)
		case trace.FinalAnswer == "":
			trace.FinalAnswer = sec.body
		}
	}
	if trace.FinalAnswer == "" {
		trace.FinalAnswer = trailingContent(response, func(line string) bool {
			return strings.HasPrefix(line, "step") || strings.HasPrefix(line, "approach")
		})
	}
	return trace
}

var totRating = regexp.MustCompile(`(?is)approach\s*(\d+)\s*assessment:.*?(\d+(?:\.\d+)?)/10`)

// ApproachScores extracts self-assigned ratings per approach when present.
func ApproachScores(response string) map[int]float64 {
	scores := map[int]float64{}
	for _, m := range totRating.FindAllStringSubmatch(response, -1) {
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		scores[num] = score
	}
	return scores
}
