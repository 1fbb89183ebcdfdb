package config

import (
	"strings"

	"reasonbench/internal/spec"
)

// Normalize trims and lowercases framework identifiers and fills fallback values.
func Normalize(cfg *spec.Config) {
	for i := range cfg.Frameworks {
		cfg.Frameworks[i] = strings.ToLower(strings.TrimSpace(cfg.Frameworks[i]))
	}
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.TasksFile = strings.TrimSpace(cfg.TasksFile)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	cfg.Database = strings.TrimSpace(cfg.Database)
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
}

// ApplyRateLimitedPreset sets conservative cooldowns where none are configured.
func ApplyRateLimitedPreset(cfg *spec.Config) {
	if cfg.Cooldown.FrameworkSeconds == 0 {
		cfg.Cooldown.FrameworkSeconds = RateLimitedFrameworkCooldown
	}
	if cfg.Cooldown.RunSeconds == 0 {
		cfg.Cooldown.RunSeconds = RateLimitedRunCooldown
	}
}

// ApplyNoLimit forces both cooldowns to zero regardless of other settings.
func ApplyNoLimit(cfg *spec.Config) {
	cfg.Cooldown.FrameworkSeconds = 0
	cfg.Cooldown.RunSeconds = 0
}
