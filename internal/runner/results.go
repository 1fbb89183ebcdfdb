package runner

import "time"

// Results is the full output of one experiment run.
type Results struct {
	RunID      string         `json:"run_id"`
	Model      string         `json:"model"`
	Frameworks []string       `json:"frameworks"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Records    []ResultRecord `json:"records"`
	Summary    Summary        `json:"summary"`
	// SuggestedCooldownSeconds is set when quota errors carried a server
	// retry hint and the run had no cooldowns configured. It is a
	// recommendation for the next run, never applied automatically.
	SuggestedCooldownSeconds float64 `json:"suggested_cooldown_seconds,omitempty"`
}

// ResultRecord captures one work unit's outcome. Failed units produce a
// record like any other, with Success false and the error fields set.
type ResultRecord struct {
	Framework       string    `json:"framework"`
	TaskID          string    `json:"task_id"`
	TaskType        string    `json:"task_type"`
	Run             int       `json:"run"`
	Success         bool      `json:"success"`
	Passed          bool      `json:"passed"`
	Score           float64   `json:"score"`
	Issues          []string  `json:"issues,omitempty"`
	ReasoningSteps  int       `json:"reasoning_steps"`
	FinalAnswer     string    `json:"final_answer,omitempty"`
	Response        string    `json:"response,omitempty"`
	Attempts        int       `json:"attempts"`
	PromptTokens    int       `json:"prompt_tokens"`
	ResponseTokens  int       `json:"response_tokens"`
	TotalTokens     int       `json:"total_tokens"`
	DurationSeconds float64   `json:"duration_seconds"`
	StartedAt       time.Time `json:"started_at"`
	ErrorKind       string    `json:"error_kind,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// Summary aggregates records overall and per framework and task type.
type Summary struct {
	UnitsTotal     int                   `json:"units_total"`
	UnitsSucceeded int                   `json:"units_succeeded"`
	UnitsFailed    int                   `json:"units_failed"`
	UnitsPassed    int                   `json:"units_passed"`
	PassRate       float64               `json:"pass_rate"`
	AverageScore   float64               `json:"average_score"`
	TokensTotal    int                   `json:"tokens_total"`
	Frameworks     map[string]GroupStats `json:"frameworks"`
	TaskTypes      map[string]GroupStats `json:"task_types"`
}

// GroupStats aggregates records sharing a framework or task type.
type GroupStats struct {
	Units          int     `json:"units"`
	Succeeded      int     `json:"succeeded"`
	Passed         int     `json:"passed"`
	PassRate       float64 `json:"pass_rate"`
	AverageScore   float64 `json:"average_score"`
	AverageSeconds float64 `json:"average_seconds"`
	AverageSteps   float64 `json:"average_steps"`
	TokensTotal    int     `json:"tokens_total"`
}
