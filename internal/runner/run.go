package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reasonbench/internal/framework"
	"reasonbench/internal/llm"
	"reasonbench/internal/spec"
	"reasonbench/internal/task"
)

// Run executes the full experiment plan sequentially and returns one
// record per work unit, in plan order. Unit failures are recorded, not
// returned; the error covers setup problems only.
func Run(ctx context.Context, cfg spec.Config, params RunParams) (Results, error) {
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	sleep := params.Deps.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	observer := params.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	suite := params.Suite
	if len(suite.Tasks) == 0 {
		suite = task.Builtin()
	}
	units, err := BuildPlan(cfg.Frameworks, suite, cfg.RunsPerTask)
	if err != nil {
		return Results{}, err
	}

	providerFactory := params.Deps.ProviderFactory
	if providerFactory == nil {
		providerFactory = func(model string) (llm.Provider, error) {
			return llm.ProviderFromEnv(model, nil)
		}
	}
	provider, err := providerFactory(cfg.Model)
	if err != nil {
		return Results{}, err
	}

	cooldowns := NewCooldownController(
		secondsToDuration(cfg.Cooldown.FrameworkSeconds),
		secondsToDuration(cfg.Cooldown.RunSeconds),
	)
	policy := RetryPolicy{
		MaxRetries:       cfg.MaxRetries,
		QuotaBackoff:     secondsToDuration(cfg.Cooldown.QuotaBackoffSeconds),
		TransientBackoff: secondsToDuration(cfg.Cooldown.TransientBackoffSeconds),
	}
	deps := RunDependencies{Now: now, Sleep: sleep}

	startedAt := now()
	observer.OnRunStart(runID, cfg.Model, units)
	for _, unit := range units {
		observer.OnUnitEvent(unitEvent(unit, UnitQueued, now()))
	}

	records := make([]ResultRecord, 0, len(units))
	noCooldowns := cfg.Cooldown.FrameworkSeconds == 0 && cfg.Cooldown.RunSeconds == 0
	var suggestedCooldown time.Duration
	aborted := false
	for _, unit := range units {
		if aborted || ctx.Err() != nil {
			aborted = true
			record := abortedRecord(unit, suite, ctx.Err(), now())
			records = append(records, record)
			event := unitEvent(unit, UnitErrored, now())
			event.ErrorKind = record.ErrorKind
			event.Error = record.Error
			observer.OnUnitEvent(event)
			continue
		}

		decision := cooldowns.Next(unit)
		if decision.Duration > 0 {
			event := unitEvent(unit, UnitCoolingDown, now())
			event.Reason = decision.Reason
			event.Wait = decision.Duration
			observer.OnUnitEvent(event)
			sleep(decision.Duration)
		}

		fw, err := framework.ByID(unit.Framework)
		if err != nil {
			return Results{}, err
		}
		item, ok := suite.ByID(unit.TaskID)
		if !ok {
			return Results{}, fmt.Errorf("unknown task id %q", unit.TaskID)
		}
		record := executeUnit(
			ctx, provider, fw, item, unit,
			policy, cfg.Temperature, cfg.MaxTokens,
			deps, observer,
		)
		if noCooldowns && record.ErrorKind == string(llm.KindQuota) {
			if hint, ok := llm.RetryDelayHint(record.Error); ok {
				if suggestion := hint + llm.RetryDelayBuffer; suggestion > suggestedCooldown {
					suggestedCooldown = suggestion
				}
			}
		}
		records = append(records, record)
	}

	results := Results{
		RunID:      runID,
		Model:      cfg.Model,
		Frameworks: cfg.Frameworks,
		StartedAt:  startedAt,
		FinishedAt: now(),
		Records:    records,
		Summary:    summarize(records),

		SuggestedCooldownSeconds: suggestedCooldown.Seconds(),
	}
	observer.OnRunEnd(results)
	return results, nil
}

// RunAndWrite runs the experiment and writes results files to OutputDir.
func RunAndWrite(ctx context.Context, cfg spec.Config, params RunParams) (Results, OutputPaths, error) {
	results, err := Run(ctx, cfg, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	outputDir := params.OutputDir
	if strings.TrimSpace(outputDir) == "" {
		outputDir = cfg.OutputDir
	}
	paths, err := WriteRunOutputs(results, outputDir)
	if err != nil {
		return results, OutputPaths{}, err
	}
	return results, paths, nil
}

// abortedRecord marks a unit that never started because the run was
// cancelled. It keeps the one-record-per-unit shape intact.
func abortedRecord(unit WorkUnit, suite task.Suite, cause error, now time.Time) ResultRecord {
	message := "run aborted"
	if cause != nil {
		message = "run aborted: " + cause.Error()
	}
	taskType := ""
	if item, ok := suite.ByID(unit.TaskID); ok {
		taskType = string(item.Type)
	}
	return ResultRecord{
		Framework: unit.Framework,
		TaskID:    unit.TaskID,
		TaskType:  taskType,
		Run:       unit.Run,
		StartedAt: now,
		ErrorKind: string(llm.KindFatal),
		Error:     message,
	}
}

func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
