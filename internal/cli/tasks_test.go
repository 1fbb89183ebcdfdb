package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTasksListsBuiltinSuite verifies the default listing covers all built-in tasks.
func TestTasksListsBuiltinSuite(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"tasks"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut.String())
	}
	output := out.String()
	for _, id := range []string{"code_001", "itin_001", "proc_001"} {
		if !strings.Contains(output, id) {
			t.Fatalf("expected task %q in output %q", id, output)
		}
	}
}

// TestTasksFromFile verifies a custom suite file is listed.
func TestTasksFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `version: 1
tasks:
  - id: custom_001
    type: code_generation
    title: Custom task
    prompt: Write a program.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"tasks", "--tasks", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut.String())
	}
	if !strings.Contains(out.String(), "custom_001") {
		t.Fatalf("output = %q", out.String())
	}
}

// TestTasksBadFile verifies a malformed suite file fails.
func TestTasksBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte("version: 1\ntasks: []\n"), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"tasks", "--tasks", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(errOut.String(), "no tasks defined") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}
