//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
)

// ensureWorkDir creates the scenario's temp directory on first use.
func (s *featureState) ensureWorkDir() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "reasonbench-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	s.workDir = dir
	return nil
}

// aValidConfiguration writes a well-formed config file.
func (s *featureState) aValidConfiguration() error {
	return s.writeConfig(validConfigYAML())
}

// theConfigurationIsInvalid writes a config with an out-of-range temperature.
func (s *featureState) theConfigurationIsInvalid() error {
	return s.writeConfig(invalidConfigYAML())
}

// aTaskSuiteWithOneTaskPerType writes a minimal three-task suite.
func (s *featureState) aTaskSuiteWithOneTaskPerType() error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	s.tasksPath = filepath.Join(s.workDir, "tasks.yaml")
	if err := os.WriteFile(s.tasksPath, []byte(smokeTasksYAML()), 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// writeConfig persists configuration content to the scenario config path.
func (s *featureState) writeConfig(contents string) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	s.configPath = filepath.Join(s.workDir, "config.yaml")
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// validConfigYAML returns a minimal valid config for cucumber tests.
func validConfigYAML() string {
	return `version: 1
model: gemini-2.0-flash
temperature: 0.3
runs_per_task: 2
frameworks: [react, cot, tot]
`
}

// invalidConfigYAML returns a config the validator rejects.
func invalidConfigYAML() string {
	return `version: 1
model: gemini-2.0-flash
temperature: 5
`
}

// smokeTasksYAML returns one task of each type.
func smokeTasksYAML() string {
	return `version: 1
tasks:
  - id: code_smoke
    type: code_generation
    title: Smoke code task
    prompt: Write a program that prints numbers 1 to 10.
  - id: itin_smoke
    type: itinerary_planning
    title: Smoke itinerary task
    prompt: Plan a two-day trip to Paris on a small budget.
  - id: proc_smoke
    type: procedure_structuring
    title: Smoke procedure task
    prompt: Turn these deployment notes into a numbered runbook.
`
}
