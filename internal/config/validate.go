package config

import (
	"fmt"

	"reasonbench/internal/spec"
)

// Validate checks a normalized config for values the engine cannot run with.
func Validate(cfg *spec.Config) error {
	if cfg.Model == "" {
		return fmt.Errorf("config: model is required")
	}
	if cfg.RunsPerTask < 1 {
		return fmt.Errorf("config: runs_per_task must be >= 1, got %d", cfg.RunsPerTask)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("config: max_retries must be >= 0, got %d", cfg.MaxRetries)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("config: temperature must be within [0, 2], got %v", cfg.Temperature)
	}
	if len(cfg.Frameworks) == 0 {
		return fmt.Errorf("config: at least one framework is required")
	}
	seen := make(map[string]bool, len(cfg.Frameworks))
	for _, id := range cfg.Frameworks {
		if id == "" {
			return fmt.Errorf("config: framework id is empty")
		}
		if seen[id] {
			return fmt.Errorf("config: duplicate framework %q", id)
		}
		seen[id] = true
	}
	if err := validateCooldown(cfg.Cooldown); err != nil {
		return err
	}
	return nil
}

func validateCooldown(cd spec.CooldownConfig) error {
	if cd.FrameworkSeconds < 0 {
		return fmt.Errorf("config: framework cooldown must be >= 0, got %v", cd.FrameworkSeconds)
	}
	if cd.RunSeconds < 0 {
		return fmt.Errorf("config: run cooldown must be >= 0, got %v", cd.RunSeconds)
	}
	if cd.QuotaBackoffSeconds < 0 {
		return fmt.Errorf("config: quota backoff must be >= 0, got %v", cd.QuotaBackoffSeconds)
	}
	if cd.TransientBackoffSeconds < 0 {
		return fmt.Errorf("config: transient backoff must be >= 0, got %v", cd.TransientBackoffSeconds)
	}
	return nil
}
