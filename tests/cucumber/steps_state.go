//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	configPath string
	tasksPath  string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a valid experiment configuration$`, state.aValidConfiguration)
	ctx.Step(`^the configuration is invalid$`, state.theConfigurationIsInvalid)
	ctx.Step(`^a task suite with one task per type$`, state.aTaskSuiteWithOneTaskPerType)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output mentions "([^"]+)"$`, state.theErrorOutputMentions)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

// reset clears buffers and state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.configPath = ""
	s.tasksPath = ""
}

// cleanup removes temporary files after each scenario.
func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}
