package eval

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reasonbench/internal/task"
)

// PassThreshold is the minimum score that counts as a passing output.
const PassThreshold = 70.0

// Result summarizes validation of one model output.
type Result struct {
	Passed bool     `json:"passed"`
	Score  float64  `json:"score"`
	Issues []string `json:"issues,omitempty"`
}

// Score validates a model output for a task using discriminative
// feature scoring, returning a 0..100 score and the issues found.
func Score(t task.Task, output string) Result {
	var score float64
	var issues []string
	switch t.Type {
	case task.TypeCodeGeneration:
		score, issues = scoreCode(output)
	case task.TypeItineraryPlanning:
		score, issues = scoreItinerary(output)
	case task.TypeProcedureStructuring:
		score, issues = scoreProcedure(output)
	default:
		return Result{Issues: []string{fmt.Sprintf("unknown task type %q", t.Type)}}
	}
	return Result{
		Passed: score >= PassThreshold,
		Score:  score,
		Issues: issues,
	}
}

// clampScore bounds a raw weighted total to the 0..100 scale.
func clampScore(total float64) float64 {
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// FormatPreview truncates output for display, preferring a natural break
// point and never splitting a multi-byte rune.
func FormatPreview(output string, maxLength int) string {
	if len(output) <= maxLength {
		return output
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(output[cut]) {
		cut--
	}
	truncated := output[:cut]
	breakPoint := strings.LastIndexAny(truncated, ".\n")
	if breakPoint > int(float64(maxLength)*0.7) {
		return output[:breakPoint+1] + "..."
	}
	return truncated + "..."
}
