package spec

import "testing"

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
model: gemini-2.0-flash
temperature: 0.3
runs_per_task: 3
frameworks: [react, cot, tot]
output_dir: "./results"
cooldown:
  framework_seconds: 60
  run_seconds: 10
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Cooldown.FrameworkSeconds != 60 {
		t.Fatalf("framework cooldown = %v, want 60", cfg.Cooldown.FrameworkSeconds)
	}
	if len(cfg.Frameworks) != 3 {
		t.Fatalf("frameworks = %v", cfg.Frameworks)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte("version: 1\nunknown: true\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}
