//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"reasonbench/internal/cli"
)

// iRunCommand executes a CLI command for the scenario. Placeholders for
// the scenario's config and tasks files are substituted before running.
func (s *featureState) iRunCommand(command string) error {
	command = strings.ReplaceAll(command, "<config>", s.configPath)
	command = strings.ReplaceAll(command, "<tasks>", s.tasksPath)
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "reasonbench" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}
