package eval

import (
	"regexp"
	"strings"
)

// procedureFeatures captures the structural signals of a runbook answer.
type procedureFeatures struct {
	stepCount            int
	hasNumberedSteps     bool
	hasLogicalSequence   bool
	hasVerificationSteps bool
	hasBackupStep        bool
	hasRollbackPlan      bool
	hasCheckpoints       bool
	hasResponsibilities  bool
	hasNotificationSteps bool
	hasDocumentation     bool
	hasCodeExamples      bool
	detailLevel          string
	wordCount            int
}

var (
	sequenceTerms     = []string{"first", "then", "next", "after", "before", "finally", "once", "following"}
	verificationTerms = []string{"verify", "check", "confirm", "validate", "test", "ensure", "monitor"}
	rollbackTerms     = []string{"rollback", "roll back", "revert", "undo", "restore"}
	checkpointTerms   = []string{"checkpoint", "milestone", "gate", "approval", "sign-off", "sign off"}
	roleTerms         = []string{"engineer", "developer", "operator", "team", "lead", "owner", "responsible", "on-call", "oncall"}
	notificationTerms = []string{"notify", "alert", "announce", "inform", "communicate", "stakeholder", "email", "slack"}
	documentationTerms = []string{"document", "record", "log", "note", "wiki", "runbook"}
	codeExampleTerms  = []string{"```", "ansible", "docker", "kubectl", "terraform"}

	numberedStepPattern = regexp.MustCompile(`(?m)^\s*(?:step\s*)?\d+[.):]`)
)

func extractProcedureFeatures(text string) procedureFeatures {
	lower := strings.ToLower(text)
	f := procedureFeatures{
		wordCount:   len(strings.Fields(text)),
		detailLevel: "low",
	}
	f.stepCount = len(numberedStepPattern.FindAllString(lower, -1))
	f.hasNumberedSteps = f.stepCount >= 8
	f.hasLogicalSequence = countOccurrences(lower, sequenceTerms) >= 5
	f.hasVerificationSteps = countOccurrences(lower, verificationTerms) >= 3
	f.hasBackupStep = strings.Contains(lower, "backup") || strings.Contains(lower, "back up") ||
		strings.Contains(lower, "snapshot")
	f.hasRollbackPlan = containsAny(lower, rollbackTerms)
	f.hasCheckpoints = containsAny(lower, checkpointTerms)
	f.hasResponsibilities = containsAny(lower, roleTerms)
	f.hasNotificationSteps = containsAny(lower, notificationTerms)
	f.hasDocumentation = containsAny(lower, documentationTerms)
	f.hasCodeExamples = containsAny(lower, codeExampleTerms)
	if f.wordCount > 600 && f.hasCodeExamples {
		f.detailLevel = "high"
	} else if f.wordCount > 300 {
		f.detailLevel = "medium"
	}
	return f
}

// scoreProcedure weighs runbook features: 40 core structure, 40 safety,
// 20 operational completeness, with a brevity penalty.
func scoreProcedure(output string) (float64, []string) {
	var issues []string
	f := extractProcedureFeatures(output)

	total := 0.0
	if f.hasNumberedSteps {
		total += 15
	} else {
		total += minFloat(float64(f.stepCount)*1.5, 10)
		issues = append(issues, "Missing clear numbered step structure")
	}
	add := func(ok bool, points float64, issue string) {
		if ok {
			total += points
		} else if issue != "" {
			issues = append(issues, issue)
		}
	}
	add(f.hasLogicalSequence, 10, "Steps lack logical sequencing")
	add(f.hasVerificationSteps, 15, "Missing verification or testing steps")
	add(f.hasBackupStep, 10, "Missing backup step before deployment")
	add(f.hasRollbackPlan, 15, "Missing rollback procedure")
	add(f.hasCheckpoints, 5, "")
	add(f.hasResponsibilities, 5, "")
	add(f.hasNotificationSteps, 10, "Missing team notification steps")
	add(f.hasDocumentation, 5, "")
	add(f.hasCodeExamples, 5, "")
	total += detailPoints(f.detailLevel)
	if f.wordCount < 200 {
		total -= 15
		issues = append(issues, "Response too brief for a complete deployment procedure")
	}
	return clampScore(total), issues
}
