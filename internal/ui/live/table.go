package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the unit table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Unit", Width: 28},
		{Title: "Status", Width: 34},
		{Title: "Time", Width: 10},
		{Title: "Retries", Width: 7},
	}
}

// columnsForWidth widens the status column on large terminals.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	extra := width - 28 - 34 - 10 - 7 - 8
	if extra > 0 {
		columns[1].Width += extra
	}
	return columns
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatUnitID(row),
			formatStatus(row, noColor),
			formatRowDuration(row, now),
			formatRetries(row.Retries),
		})
	}
	return rows
}
