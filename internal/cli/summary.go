package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"reasonbench/internal/runner"
)

// printRunSummary writes the post-run report lines for plain output.
func printRunSummary(w io.Writer, results runner.Results, paths runner.OutputPaths) {
	fmt.Fprintf(w, "Run %s completed\n", results.RunID)
	fmt.Fprintf(w, "Model: %s\n", results.Model)
	fmt.Fprintf(w, "Duration: %s\n", results.FinishedAt.Sub(results.StartedAt).Round(time.Second))
	printSummaryTable(w, results.Summary)
	if results.SuggestedCooldownSeconds > 0 {
		fmt.Fprintf(w, "Quota errors occurred with cooldowns disabled; consider --run-cooldown %.0f or --rate-limited\n",
			results.SuggestedCooldownSeconds)
	}
	fmt.Fprintf(w, "Results: %s\n", paths.ResultsPath())
	fmt.Fprintf(w, "CSV: %s\n", paths.CSVPath())
	fmt.Fprintf(w, "Summary: %s\n", paths.SummaryPath())
}

// printSummaryTable writes overall and per-group statistics.
func printSummaryTable(w io.Writer, summary runner.Summary) {
	fmt.Fprintf(w, "Units: %d total, %d succeeded, %d failed, %d passed (%.0f%%)\n",
		summary.UnitsTotal, summary.UnitsSucceeded, summary.UnitsFailed,
		summary.UnitsPassed, summary.PassRate*100)
	fmt.Fprintf(w, "Average score: %.1f | Tokens: %d\n", summary.AverageScore, summary.TokensTotal)

	fmt.Fprintln(w, "Per framework:")
	for _, name := range sortedKeys(summary.Frameworks) {
		printGroup(w, name, summary.Frameworks[name])
	}
	fmt.Fprintln(w, "Per task type:")
	for _, name := range sortedKeys(summary.TaskTypes) {
		printGroup(w, name, summary.TaskTypes[name])
	}
}

func printGroup(w io.Writer, name string, stats runner.GroupStats) {
	fmt.Fprintf(w, "  %-22s %d/%d passed (%.0f%%), avg score %.1f, avg time %.1fs, avg steps %.1f\n",
		name, stats.Passed, stats.Units, stats.PassRate*100,
		stats.AverageScore, stats.AverageSeconds, stats.AverageSteps)
}

func sortedKeys(groups map[string]runner.GroupStats) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
