package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// defaultGeminiBaseURL is the default Generative Language API base URL.
const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiProvider implements Provider for the Google Generative Language API.
type GeminiProvider struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	model   string
}

// ProviderFromEnv builds a Gemini provider using environment configuration.
func ProviderFromEnv(model string, client HTTPDoer) (Provider, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return NewGeminiProvider(model, apiKey, "", client)
}

// NewGeminiProvider constructs a Gemini provider with explicit settings.
func NewGeminiProvider(model, apiKey, baseURL string, client HTTPDoer) (*GeminiProvider, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultGeminiBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiProvider{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		model:   model,
	}, nil
}

// Model reports the model identifier requests are sent to.
func (p *GeminiProvider) Model() string { return p.model }

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete sends one prompt and returns the concatenated candidate text.
func (p *GeminiProvider) Complete(ctx context.Context, creq CompletionRequest) (Completion, error) {
	requestBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: creq.Prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     creq.Temperature,
			MaxOutputTokens: creq.MaxTokens,
		},
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return Completion{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.BaseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Completion{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return Completion{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Completion{}, decodeAPIError(resp.StatusCode, body)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Completion{}, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return Completion{}, fmt.Errorf("response contains no candidates")
	}
	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return Completion{
		Text:             text.String(),
		PromptTokens:     decoded.UsageMetadata.PromptTokenCount,
		CompletionTokens: decoded.UsageMetadata.CandidatesTokenCount,
		TotalTokens:      decoded.UsageMetadata.TotalTokenCount,
	}, nil
}

func decodeAPIError(statusCode int, body []byte) *APIError {
	var decoded geminiErrorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Status:     decoded.Error.Status,
			Message:    decoded.Error.Message,
		}
	}
	return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}
