package llm

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrorKind partitions call failures by how the engine should react.
type ErrorKind string

const (
	// KindQuota marks rate-limit and quota exhaustion failures.
	KindQuota ErrorKind = "quota"
	// KindTransient marks failures worth retrying as-is.
	KindTransient ErrorKind = "transient"
	// KindFatal marks failures where retrying cannot help.
	KindFatal ErrorKind = "fatal"
)

var quotaMarkers = []string{
	"429",
	"quota",
	"rate limit",
	"rate-limit",
	"resource_exhausted",
	"resource exhausted",
	"too many requests",
}

// Classify maps an error to its kind. Anything unrecognized is fatal.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindFatal
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return KindQuota
		}
		if apiErr.StatusCode >= 500 && apiErr.StatusCode < 600 {
			return KindTransient
		}
		if messageMentionsQuota(apiErr.Message) {
			return KindQuota
		}
		return KindFatal
	}

	if messageMentionsQuota(err.Error()) {
		return KindQuota
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}
	return KindFatal
}

func messageMentionsQuota(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// RetryDelayBuffer is added on top of a server retry hint when suggesting
// a cooldown to the operator.
const RetryDelayBuffer = 5 * time.Second

var retryDelayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`retry_delay\s*{\s*seconds:\s*(\d+)`),
	regexp.MustCompile(`"retryDelay"\s*:\s*"(\d+)s"`),
	regexp.MustCompile(`retry in\s+(\d+(?:\.\d+)?)s`),
}

// RetryDelayHint extracts the server-provided retry delay from an error
// message when one is present.
func RetryDelayHint(message string) (time.Duration, bool) {
	for _, pattern := range retryDelayPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		seconds, perr := strconv.ParseFloat(m[1], 64)
		if perr != nil {
			continue
		}
		return time.Duration(seconds * float64(time.Second)), true
	}
	return 0, false
}
