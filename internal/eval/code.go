package eval

import (
	"regexp"
	"strings"
)

// codeFeatures captures the structural signals extracted from a code answer.
type codeFeatures struct {
	plausiblePython    bool
	hasGridClass       bool
	hasStepMethod      bool
	hasNeighborLogic   bool
	hasProperRules     bool
	hasDisplayMethod   bool
	hasMainGuard       bool
	hasCommandLineArgs bool
	hasTypeHints       bool
	hasDocstrings      bool
	lineCount          int
}

var (
	codeBlockPattern  = regexp.MustCompile("(?s)```python\n(.*?)\n```")
	gridClassPattern  = regexp.MustCompile(`(?i)class\s+\w*grid\w*`)
	defPattern        = regexp.MustCompile(`(?i)def\s+(\w+)`)
	rulesPattern      = regexp.MustCompile(`(?s)[^0-9]2[^0-9].*3[^0-9]|[^0-9]3[^0-9].*2[^0-9]`)
	mainGuardPattern  = regexp.MustCompile(`__name__\s*==\s*['"]__main__['"]`)
	typeHintPattern   = regexp.MustCompile(`->\s*\w+|:\s*(int|str|float|bool|list|dict|tuple|set|List|Dict|Optional)\b`)
	pythonLinePattern = regexp.MustCompile(`(?m)^\s*(def|class)\s+\w+.*:\s*$`)
)

// extractCode pulls the python block out of a response, or uses the whole text.
func extractCode(output string) string {
	if m := codeBlockPattern.FindStringSubmatch(output); m != nil {
		return m[1]
	}
	return output
}

func extractCodeFeatures(code string) codeFeatures {
	lower := strings.ToLower(code)
	f := codeFeatures{
		lineCount: len(strings.Split(code, "\n")),
	}
	// Go has no Python parser; a plausibility check on def/class headers
	// stands in for the original syntax validation.
	f.plausiblePython = pythonLinePattern.MatchString(code)
	f.hasGridClass = gridClassPattern.MatchString(code)
	for _, m := range defPattern.FindAllStringSubmatch(code, -1) {
		name := strings.ToLower(m[1])
		switch {
		case strings.Contains(name, "step") || strings.Contains(name, "advance"):
			f.hasStepMethod = true
		case strings.Contains(name, "neighbor") || strings.Contains(name, "count"):
			f.hasNeighborLogic = true
		case strings.Contains(name, "display") || name == "__str__":
			f.hasDisplayMethod = true
		}
	}
	if strings.Contains(lower, "__str__") {
		f.hasDisplayMethod = true
	}
	if rulesPattern.MatchString(code) && strings.Contains(lower, "neighbor") &&
		(strings.Contains(lower, "live") || strings.Contains(lower, "alive")) {
		f.hasProperRules = true
	}
	f.hasMainGuard = mainGuardPattern.MatchString(code)
	f.hasCommandLineArgs = strings.Contains(code, "argparse") || strings.Contains(code, "ArgumentParser")
	f.hasTypeHints = typeHintPattern.MatchString(code)
	f.hasDocstrings = strings.Contains(code, `"""`) || strings.Contains(code, "'''")
	return f
}

// scoreCode weighs code features: 60 core, 25 structure, 15 quality,
// with a brevity penalty.
func scoreCode(output string) (float64, []string) {
	var issues []string
	f := extractCodeFeatures(extractCode(output))

	total := 0.0
	add := func(ok bool, points float64, issue string) {
		if ok {
			total += points
		} else if issue != "" {
			issues = append(issues, issue)
		}
	}
	add(f.plausiblePython, 15, "Code does not look like valid Python")
	add(f.hasGridClass, 15, "Missing Grid class implementation")
	add(f.hasProperRules, 15, "Game of Life rules not properly implemented")
	add(f.hasNeighborLogic, 15, "Missing neighbor counting functionality")
	add(f.hasMainGuard, 10, "Missing if __name__ == '__main__' guard")
	add(f.hasStepMethod, 10, "Missing step/advance method")
	add(f.hasDisplayMethod, 5, "Missing display functionality")
	add(f.hasCommandLineArgs, 5, "")
	add(f.hasTypeHints, 5, "")
	add(f.hasDocstrings, 5, "")
	if f.lineCount < 50 {
		total -= 10
		issues = append(issues, "Implementation too brief for a complete solution")
	}
	return clampScore(total), issues
}
