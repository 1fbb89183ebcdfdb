package spec

// Config is the experiment configuration loaded from .reasonbench.yml.
type Config struct {
	Version     int            `yaml:"version"`
	Model       string         `yaml:"model"`
	Temperature float64        `yaml:"temperature"`
	MaxTokens   int            `yaml:"max_tokens"`
	RunsPerTask int            `yaml:"runs_per_task"`
	MaxRetries  int            `yaml:"max_retries"`
	Frameworks  []string       `yaml:"frameworks"`
	TasksFile   string         `yaml:"tasks_file"`
	OutputDir   string         `yaml:"output_dir"`
	Database    string         `yaml:"database"`
	Cooldown    CooldownConfig `yaml:"cooldown"`
}

// CooldownConfig holds the delays that keep the engine under provider quotas.
type CooldownConfig struct {
	// FrameworkSeconds is slept when execution switches frameworks.
	FrameworkSeconds float64 `yaml:"framework_seconds"`
	// RunSeconds is slept between consecutive runs of the same framework-task pair.
	RunSeconds float64 `yaml:"run_seconds"`
	// QuotaBackoffSeconds is slept before retrying a quota-classified call failure.
	QuotaBackoffSeconds float64 `yaml:"quota_backoff_seconds"`
	// TransientBackoffSeconds is slept before retrying a transient call failure.
	TransientBackoffSeconds float64 `yaml:"transient_backoff_seconds"`
}
