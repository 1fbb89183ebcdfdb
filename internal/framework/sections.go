package framework

import (
	"regexp"
	"strings"
)

// sectionPattern compiles a case-insensitive line-start label matcher from
// regex alternatives, capturing the label text in group 1.
func sectionPattern(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?mi)^\s*(` + alternatives + `)\s*:`)
}

// section is a labelled block of response text.
type section struct {
	label string
	body  string
}

// splitSections slices text into labelled sections. The pattern must match
// labels at line starts with the label text in capture group 1; everything up
// to the next label belongs to the preceding section's body.
func splitSections(text string, pattern *regexp.Regexp) []section {
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	sections := make([]section, 0, len(matches))
	for i, m := range matches {
		label := strings.ToLower(strings.TrimSpace(text[m[2]:m[3]]))
		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		sections = append(sections, section{
			label: label,
			body:  strings.TrimSpace(text[bodyStart:bodyEnd]),
		})
	}
	return sections
}

// trailingContent returns the last lines of text that are not section labels,
// used when a response never declares an explicit final answer.
func trailingContent(text string, isLabelLine func(string) bool) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var kept []string
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isLabelLine(strings.ToLower(line)) {
			break
		}
		kept = append([]string{line}, kept...)
	}
	if len(kept) > 0 {
		return strings.Join(kept, "\n")
	}
	if len(lines) > 0 {
		return strings.TrimSpace(lines[len(lines)-1])
	}
	return ""
}

// collapseSpaces normalizes labels like "step  4" to "step 4".
var collapseSpaces = regexp.MustCompile(`\s+`)

func normalizeLabel(label string) string {
	return collapseSpaces.ReplaceAllString(label, " ")
}
