package config

import "reasonbench/internal/spec"

const (
	// DefaultModel is used when neither config nor environment names one.
	DefaultModel = "gemini-2.0-flash"

	defaultTemperature      = 0.3
	defaultMaxTokens        = 2048
	defaultRunsPerTask      = 3
	defaultMaxRetries       = 3
	defaultQuotaBackoff     = 15.0
	defaultTransientBackoff = 5.0
	defaultOutputDir        = "results"
)

// RateLimitedFrameworkCooldown is the conservative framework delay for the
// rate-limited preset, sized for free-tier per-minute quotas.
const RateLimitedFrameworkCooldown = 60.0

// RateLimitedRunCooldown is the conservative run delay for the rate-limited preset.
const RateLimitedRunCooldown = 10.0

// Defaults returns the built-in configuration.
func Defaults() spec.Config {
	return spec.Config{
		Version:     1,
		Model:       DefaultModel,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		RunsPerTask: defaultRunsPerTask,
		MaxRetries:  defaultMaxRetries,
		Frameworks:  []string{"react", "cot", "tot"},
		OutputDir:   defaultOutputDir,
		Cooldown: spec.CooldownConfig{
			QuotaBackoffSeconds:     defaultQuotaBackoff,
			TransientBackoffSeconds: defaultTransientBackoff,
		},
	}
}
