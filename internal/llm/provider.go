package llm

import (
	"context"
	"net/http"
)

// CompletionRequest carries one prompt and its sampling parameters.
type CompletionRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Completion is the model output for a single request.
type Completion struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Provider generates completions for a fixed model.
type Provider interface {
	Model() string
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// HTTPDoer abstracts HTTP clients used by providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
