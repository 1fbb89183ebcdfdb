package runner

import (
	"context"
	"time"

	"reasonbench/internal/llm"
)

// RetryPolicy bounds and paces retries of a single model call.
type RetryPolicy struct {
	MaxRetries       int
	QuotaBackoff     time.Duration
	TransientBackoff time.Duration
}

// retryFunc is notified before each retry sleep.
type retryFunc func(attempt int, kind llm.ErrorKind, wait time.Duration, err error)

// executeCall performs one model call with bounded retries. Quota and
// transient failures share a single attempt budget of MaxRetries+1;
// fatal failures stop immediately. Backoff is fixed per error kind.
func executeCall(
	ctx context.Context,
	provider llm.Provider,
	req llm.CompletionRequest,
	policy RetryPolicy,
	sleep func(time.Duration),
	onRetry retryFunc,
) (llm.Completion, int, error) {
	maxAttempts := policy.MaxRetries + 1
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		completion, err := provider.Complete(ctx, req)
		if err == nil {
			return completion, attempt, nil
		}
		lastErr = err

		kind := llm.Classify(err)
		if kind == llm.KindFatal || attempt == maxAttempts {
			return llm.Completion{}, attempt, err
		}
		wait := policy.TransientBackoff
		if kind == llm.KindQuota {
			wait = policy.QuotaBackoff
		}
		if onRetry != nil {
			onRetry(attempt, kind, wait, err)
		}
		if wait > 0 {
			sleep(wait)
		}
	}
	return llm.Completion{}, maxAttempts, lastErr
}
