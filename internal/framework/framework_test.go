package framework

import (
	"strings"
	"testing"

	"reasonbench/internal/task"
)

func codeTask() task.Task {
	suite := task.Builtin()
	t, _ := suite.ByID("code_001")
	return t
}

// TestByIDKnownFrameworks verifies all three strategies are registered.
func TestByIDKnownFrameworks(t *testing.T) {
	for _, id := range []string{"react", "cot", "tot"} {
		fw, err := ByID(id)
		if err != nil {
			t.Fatalf("framework %s: %v", id, err)
		}
		if fw.ID() != id {
			t.Fatalf("id = %q, want %q", fw.ID(), id)
		}
	}
	if _, err := ByID("scratchpad"); err == nil {
		t.Fatalf("expected error for unknown framework")
	}
}

// TestBuildPromptEmbedsTask verifies templates include task type and prompt.
func TestBuildPromptEmbedsTask(t *testing.T) {
	item := codeTask()
	for _, id := range IDs() {
		fw, err := ByID(id)
		if err != nil {
			t.Fatalf("framework %s: %v", id, err)
		}
		prompt := fw.BuildPrompt(item)
		if !strings.Contains(prompt, string(item.Type)) {
			t.Fatalf("%s prompt missing task type", id)
		}
		if !strings.Contains(prompt, "Conway's Game of Life") {
			t.Fatalf("%s prompt missing task text", id)
		}
	}
}

// TestReActParseTrace verifies cycle grouping and final answer extraction.
func TestReActParseTrace(t *testing.T) {
	response := `Thought: I need a Grid class.
Action: Sketch the class layout.
Observation: It needs a step method.
Thought: Now write the code.
Final Answer: class Grid: pass`
	trace := reactFramework{}.ParseTrace(response)
	if len(trace.Steps) != 2 {
		t.Fatalf("steps = %d, want 2: %v", len(trace.Steps), trace.Steps)
	}
	if !strings.HasPrefix(trace.Steps[0], "Thought: I need a Grid class.") {
		t.Fatalf("step[0] = %q", trace.Steps[0])
	}
	if !strings.Contains(trace.Steps[0], "Action: Sketch the class layout.") {
		t.Fatalf("step[0] missing action: %q", trace.Steps[0])
	}
	if trace.FinalAnswer != "class Grid: pass" {
		t.Fatalf("final = %q", trace.FinalAnswer)
	}
}

// TestReActParseTraceFallback verifies trailing content is used when no final answer exists.
func TestReActParseTraceFallback(t *testing.T) {
	response := "Thought: thinking.\nAction: acting.\nHere is the result.\nprint('done')"
	trace := reactFramework{}.ParseTrace(response)
	if !strings.Contains(trace.FinalAnswer, "print('done')") {
		t.Fatalf("final = %q", trace.FinalAnswer)
	}
}

// TestCoTParseTrace verifies numbered step and final solution extraction.
func TestCoTParseTrace(t *testing.T) {
	response := `Step 1: Understand the problem.
Step 2: Plan the algorithm.
Final Solution: def main(): pass`
	trace := cotFramework{}.ParseTrace(response)
	if len(trace.Steps) != 2 {
		t.Fatalf("steps = %d, want 2: %v", len(trace.Steps), trace.Steps)
	}
	if trace.Steps[1] != "Step 2: Plan the algorithm." {
		t.Fatalf("step[1] = %q", trace.Steps[1])
	}
	if trace.FinalAnswer != "def main(): pass" {
		t.Fatalf("final = %q", trace.FinalAnswer)
	}
}

// TestCoTParseTraceCompactLabels verifies labels without a space, like
// "step4", still render with a single step number.
func TestCoTParseTraceCompactLabels(t *testing.T) {
	response := "step4: Wire the pieces together.\nFinal Solution: done"
	trace := cotFramework{}.ParseTrace(response)
	if len(trace.Steps) != 1 {
		t.Fatalf("steps = %d, want 1: %v", len(trace.Steps), trace.Steps)
	}
	if trace.Steps[0] != "Step 4: Wire the pieces together." {
		t.Fatalf("step[0] = %q", trace.Steps[0])
	}
}

// TestCoTParseTraceParagraphFallback verifies unstructured responses still yield steps.
func TestCoTParseTraceParagraphFallback(t *testing.T) {
	response := "First I analyze.\n\nThen I implement.\n\nDone."
	trace := cotFramework{}.ParseTrace(response)
	if len(trace.Steps) != 3 {
		t.Fatalf("steps = %d, want 3: %v", len(trace.Steps), trace.Steps)
	}
}

// TestToTParseTrace verifies approach, assessment, selection, and execution phases.
func TestToTParseTrace(t *testing.T) {
	response := `Approach 1: Brute force.
Approach 2: Use sets.
Approach 1 Assessment: Simple but slow - 4/10
Approach 2 Assessment: Fast - 8/10
Selected Approach: Approach 2, it scales better.
Step 1: Build the set.
Final Solution: use a set`
	trace := totFramework{}.ParseTrace(response)
	want := []string{
		"Generated Approach 1: Brute force.",
		"Generated Approach 2: Use sets.",
		"Evaluated Approach 1: Simple but slow - 4/10",
		"Evaluated Approach 2: Fast - 8/10",
		"Selected Best Approach: Approach 2, it scales better.",
		"Execution Step 1: Build the set.",
	}
	if len(trace.Steps) != len(want) {
		t.Fatalf("steps = %d, want %d: %v", len(trace.Steps), len(want), trace.Steps)
	}
	for i := range want {
		if trace.Steps[i] != want[i] {
			t.Fatalf("step[%d] = %q, want %q", i, trace.Steps[i], want[i])
		}
	}
	if trace.FinalAnswer != "use a set" {
		t.Fatalf("final = %q", trace.FinalAnswer)
	}
	scores := ApproachScores(response)
	if scores[1] != 4 || scores[2] != 8 {
		t.Fatalf("scores = %v", scores)
	}
}
