//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIsZero asserts the CLI succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d (stderr: %s)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputContains checks stdout for a fragment.
func (s *featureState) theOutputContains(fragment string) error {
	if !strings.Contains(s.stdout.String(), fragment) {
		return fmt.Errorf("expected %q in output, got %q", fragment, s.stdout.String())
	}
	return nil
}

// theErrorOutputMentions checks stderr for a fragment.
func (s *featureState) theErrorOutputMentions(fragment string) error {
	if !strings.Contains(s.stderr.String(), fragment) {
		return fmt.Errorf("expected %q in error output, got %q", fragment, s.stderr.String())
	}
	return nil
}
