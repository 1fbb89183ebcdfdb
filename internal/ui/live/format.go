package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"reasonbench/internal/runner"
)

// formatUnitID renders the display id for a unit row.
func formatUnitID(row UnitRow) string {
	return row.Framework + "/" + row.TaskID + "#" + fmtInt(row.Run)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatStatus renders a status string for a row.
func formatStatus(row UnitRow, noColor bool) string {
	text := statusLabel(row)
	return stylizeStatus(text, row.Status, noColor)
}

// statusLabel maps a row to its display label.
func statusLabel(row UnitRow) string {
	switch row.Status {
	case runner.UnitQueued:
		return "queued"
	case runner.UnitCoolingDown:
		if row.Reason == runner.CooldownFrameworkSwitch {
			return "cooling (framework " + formatDuration(row.Wait) + ")"
		}
		return "cooling (" + formatDuration(row.Wait) + ")"
	case runner.UnitCalling:
		return "calling"
	case runner.UnitRetrying:
		return "retrying " + row.ErrorKind + " (" + formatDuration(row.Wait) + ")"
	case runner.UnitScoring:
		return "scoring"
	case runner.UnitPassed:
		return "passed " + formatScore(row.Score)
	case runner.UnitFailed:
		return "failed " + formatScore(row.Score)
	case runner.UnitErrored:
		if row.ErrorKind != "" {
			return "error (" + row.ErrorKind + ")"
		}
		return "error"
	default:
		return string(row.Status)
	}
}

// formatScore renders a 0..100 score.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(100 * time.Millisecond).String()
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row UnitRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() && !isTerminalStatus(row.Status) {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// formatRetries formats retry counts for display.
func formatRetries(retries int) string {
	if retries <= 0 {
		return ""
	}
	return fmtInt(retries)
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.UnitEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.UnitEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.UnitPassed:
		color = lipgloss.Color("42")
	case runner.UnitFailed:
		color = lipgloss.Color("220")
	case runner.UnitErrored:
		color = lipgloss.Color("196")
	case runner.UnitCoolingDown, runner.UnitRetrying:
		color = lipgloss.Color("39")
	case runner.UnitCalling:
		color = lipgloss.Color("33")
	case runner.UnitScoring:
		color = lipgloss.Color("201")
	case runner.UnitQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
