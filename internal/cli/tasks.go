package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runTasks builds the handler for the tasks command.
func runTasks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tasksPath := fs.String("tasks", "", "Path to a tasks file")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		suite, err := loadSuite(*tasksPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load tasks: %v\n", err)
			return ExitError
		}
		for _, item := range suite.Tasks {
			fmt.Fprintf(stdout, "%-12s %-24s %s\n", item.ID, item.Type, item.Title)
		}
		return ExitOK
	}
}
