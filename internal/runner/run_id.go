package runner

import (
	"time"

	"github.com/google/uuid"
)

// NewRunID returns a sortable run identifier: UTC timestamp plus a
// random suffix.
func NewRunID() (string, error) {
	return FormatRunID(time.Now(), uuid.NewString()[:8]), nil
}

// FormatRunID builds a run identifier from a timestamp and suffix.
func FormatRunID(now time.Time, suffix string) string {
	return now.UTC().Format("20060102T150405Z") + "-" + suffix
}
