package config

import (
	"fmt"
	"os"

	"reasonbench/internal/spec"
)

// Load reads, parses, normalizes, and validates a config file. An empty path
// yields the built-in defaults. Environment overrides are applied between the
// file and any explicit flag overrides the caller layers on top.
func Load(path string) (spec.Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return spec.Config{}, fmt.Errorf("read config: %w", err)
		}
		parsed, err := spec.ParseConfig(data)
		if err != nil {
			return spec.Config{}, err
		}
		merge(&cfg, parsed)
	}
	ApplyEnv(&cfg, os.LookupEnv)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// merge overlays non-zero file values on top of the defaults.
func merge(cfg *spec.Config, parsed spec.Config) {
	if parsed.Version != 0 {
		cfg.Version = parsed.Version
	}
	if parsed.Model != "" {
		cfg.Model = parsed.Model
	}
	if parsed.Temperature != 0 {
		cfg.Temperature = parsed.Temperature
	}
	if parsed.MaxTokens != 0 {
		cfg.MaxTokens = parsed.MaxTokens
	}
	if parsed.RunsPerTask != 0 {
		cfg.RunsPerTask = parsed.RunsPerTask
	}
	if parsed.MaxRetries != 0 {
		cfg.MaxRetries = parsed.MaxRetries
	}
	if len(parsed.Frameworks) > 0 {
		cfg.Frameworks = parsed.Frameworks
	}
	if parsed.TasksFile != "" {
		cfg.TasksFile = parsed.TasksFile
	}
	if parsed.OutputDir != "" {
		cfg.OutputDir = parsed.OutputDir
	}
	if parsed.Database != "" {
		cfg.Database = parsed.Database
	}
	if parsed.Cooldown.FrameworkSeconds != 0 {
		cfg.Cooldown.FrameworkSeconds = parsed.Cooldown.FrameworkSeconds
	}
	if parsed.Cooldown.RunSeconds != 0 {
		cfg.Cooldown.RunSeconds = parsed.Cooldown.RunSeconds
	}
	if parsed.Cooldown.QuotaBackoffSeconds != 0 {
		cfg.Cooldown.QuotaBackoffSeconds = parsed.Cooldown.QuotaBackoffSeconds
	}
	if parsed.Cooldown.TransientBackoffSeconds != 0 {
		cfg.Cooldown.TransientBackoffSeconds = parsed.Cooldown.TransientBackoffSeconds
	}
}
