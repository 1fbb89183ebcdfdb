package llm

import (
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the model API with the decoded
// status payload when one was present.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return fmt.Sprintf("api error: http %d", e.StatusCode)
	}
	if e.Status != "" {
		return fmt.Sprintf("api error: http %d %s: %s", e.StatusCode, e.Status, msg)
	}
	return fmt.Sprintf("api error: http %d: %s", e.StatusCode, msg)
}
