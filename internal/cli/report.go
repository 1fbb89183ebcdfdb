package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"reasonbench/internal/runner"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		input := fs.String("input", "", "Path to a results.json file")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if strings.TrimSpace(*input) == "" {
			fmt.Fprintln(stderr, "--input is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		data, err := os.ReadFile(*input)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read results: %v\n", err)
			return ExitError
		}
		var results runner.Results
		if err := json.Unmarshal(data, &results); err != nil {
			fmt.Fprintf(stderr, "Failed to decode results: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s | Model %s\n", results.RunID, results.Model)
		printSummaryTable(stdout, results.Summary)
		printFailures(stdout, results.Records)
		return ExitOK
	}
}

// printFailures lists units that never produced a scored response.
func printFailures(w io.Writer, records []runner.ResultRecord) {
	var failed []runner.ResultRecord
	for _, record := range records {
		if !record.Success {
			failed = append(failed, record)
		}
	}
	if len(failed) == 0 {
		return
	}
	fmt.Fprintf(w, "Failed units (%d):\n", len(failed))
	for _, record := range failed {
		fmt.Fprintf(w, "  %s/%s#%d [%s] %s\n",
			record.Framework, record.TaskID, record.Run, record.ErrorKind, record.Error)
	}
}
