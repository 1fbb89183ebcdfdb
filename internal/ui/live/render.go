package live

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.Model != "" {
		line += " | Model: " + state.Model
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Queued: " + fmtInt(counts.Queued) +
		" Cooling: " + fmtInt(counts.CoolingDown) +
		" Calling: " + fmtInt(counts.Calling) +
		" Retrying: " + fmtInt(counts.Retrying) +
		" Done: " + fmtInt(counts.Done) +
		" Passed: " + fmtInt(counts.Passed) +
		" Failed: " + fmtInt(counts.Failed) +
		" Error: " + fmtInt(counts.Errored)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line, or the final summary after
// the run completes.
func renderFooter(state State, noColor bool) string {
	if state.Finished {
		line := fmt.Sprintf("Run complete: %d/%d passed (%.0f%%), avg score %.1f",
			state.Summary.UnitsPassed, state.Summary.UnitsTotal,
			state.Summary.PassRate*100, state.Summary.AverageScore)
		return stylize(line, noColor, lipgloss.Color("42"))
	}
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
