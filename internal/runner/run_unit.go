package runner

import (
	"context"
	"fmt"
	"time"

	"reasonbench/internal/eval"
	"reasonbench/internal/framework"
	"reasonbench/internal/llm"
	"reasonbench/internal/task"
)

// maxStoredResponse bounds how much raw response text a record keeps.
const maxStoredResponse = 4000

// executeUnit runs one work unit end to end and always produces a
// record. Panics in parsing or scoring become fatal failure records.
func executeUnit(
	ctx context.Context,
	provider llm.Provider,
	fw framework.Framework,
	item task.Task,
	unit WorkUnit,
	policy RetryPolicy,
	temperature float64,
	maxTokens int,
	deps RunDependencies,
	observer RunObserver,
) (record ResultRecord) {
	startedAt := deps.Now()
	record = ResultRecord{
		Framework: unit.Framework,
		TaskID:    item.ID,
		TaskType:  string(item.Type),
		Run:       unit.Run,
		StartedAt: startedAt,
	}
	defer func() {
		if r := recover(); r != nil {
			record.Success = false
			record.Passed = false
			record.ErrorKind = string(llm.KindFatal)
			record.Error = fmt.Sprintf("panic: %v", r)
			record.DurationSeconds = deps.Now().Sub(startedAt).Seconds()
		}
	}()

	observer.OnUnitEvent(unitEvent(unit, UnitCalling, deps.Now()))
	completion, attempts, err := executeCall(ctx, provider, llm.CompletionRequest{
		Prompt:      fw.BuildPrompt(item),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, policy, deps.Sleep, func(attempt int, kind llm.ErrorKind, wait time.Duration, attemptErr error) {
		event := unitEvent(unit, UnitRetrying, deps.Now())
		event.Attempt = attempt
		event.Wait = wait
		event.ErrorKind = string(kind)
		event.Error = attemptErr.Error()
		if kind == llm.KindQuota {
			if hint, ok := llm.RetryDelayHint(event.Error); ok {
				event.RetryHint = hint
			}
		}
		observer.OnUnitEvent(event)
	})
	record.Attempts = attempts
	if err != nil {
		record.ErrorKind = string(llm.Classify(err))
		record.Error = err.Error()
		record.DurationSeconds = deps.Now().Sub(startedAt).Seconds()
		event := unitEvent(unit, UnitErrored, deps.Now())
		event.Attempt = attempts
		event.ErrorKind = record.ErrorKind
		event.Error = record.Error
		if record.ErrorKind == string(llm.KindQuota) {
			if hint, ok := llm.RetryDelayHint(record.Error); ok {
				event.RetryHint = hint
			}
		}
		observer.OnUnitEvent(event)
		return record
	}

	observer.OnUnitEvent(unitEvent(unit, UnitScoring, deps.Now()))
	trace := fw.ParseTrace(completion.Text)
	scored := eval.Score(item, completion.Text)

	record.Success = true
	record.Passed = scored.Passed
	record.Score = scored.Score
	record.Issues = scored.Issues
	record.ReasoningSteps = len(trace.Steps)
	record.FinalAnswer = eval.FormatPreview(trace.FinalAnswer, maxStoredResponse)
	record.Response = eval.FormatPreview(completion.Text, maxStoredResponse)
	record.PromptTokens = completion.PromptTokens
	record.ResponseTokens = completion.CompletionTokens
	record.TotalTokens = completion.TotalTokens
	record.DurationSeconds = deps.Now().Sub(startedAt).Seconds()

	outcome := UnitFailed
	if record.Passed {
		outcome = UnitPassed
	}
	event := unitEvent(unit, outcome, deps.Now())
	event.Score = record.Score
	observer.OnUnitEvent(event)
	return record
}

func unitEvent(unit WorkUnit, eventType UnitEventType, now time.Time) UnitEvent {
	return UnitEvent{
		Framework: unit.Framework,
		TaskID:    unit.TaskID,
		Run:       unit.Run,
		Type:      eventType,
		EmittedAt: now,
	}
}
