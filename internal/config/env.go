package config

import (
	"strconv"
	"strings"

	"reasonbench/internal/spec"
)

// LookupFunc resolves an environment variable, mirroring os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays environment overrides onto a config. The variable names
// match the original operator workflow: FRAMEWORK_COOLDOWN, RUN_COOLDOWN,
// RUNS_PER_TASK, DEFAULT_MODEL, TEMPERATURE, MAX_TOKENS, MAX_RETRIES.
func ApplyEnv(cfg *spec.Config, lookup LookupFunc) {
	if lookup == nil {
		return
	}
	if v, ok := lookupString(lookup, "DEFAULT_MODEL"); ok {
		cfg.Model = v
	}
	if v, ok := lookupFloat(lookup, "TEMPERATURE"); ok {
		cfg.Temperature = v
	}
	if v, ok := lookupInt(lookup, "MAX_TOKENS"); ok {
		cfg.MaxTokens = v
	}
	if v, ok := lookupInt(lookup, "RUNS_PER_TASK"); ok {
		cfg.RunsPerTask = v
	}
	if v, ok := lookupInt(lookup, "MAX_RETRIES"); ok {
		cfg.MaxRetries = v
	}
	if v, ok := lookupFloat(lookup, "FRAMEWORK_COOLDOWN"); ok {
		cfg.Cooldown.FrameworkSeconds = v
	}
	if v, ok := lookupFloat(lookup, "RUN_COOLDOWN"); ok {
		cfg.Cooldown.RunSeconds = v
	}
}

func lookupString(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

func lookupFloat(lookup LookupFunc, key string) (float64, bool) {
	raw, ok := lookupString(lookup, key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lookupInt(lookup LookupFunc, key string) (int, bool) {
	raw, ok := lookupString(lookup, key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
