package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateDefaults verifies the defaults pass without a config file.
func TestValidateDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("output = %q", out.String())
	}
}

// TestValidateGoodFile verifies a well-formed config file validates.
func TestValidateGoodFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\nmodel: gemini-2.0-flash\nruns_per_task: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut.String())
	}
}

// TestValidateUnknownField verifies unknown config keys are rejected.
func TestValidateUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "version: 1\nmodle: typo\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(errOut.String(), "Validation failed") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

// TestValidateMissingFile verifies a missing config path fails cleanly.
func TestValidateMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", "/does/not/exist.yaml"}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("exit = %d", code)
	}
}
