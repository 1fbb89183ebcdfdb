package task

import (
	"os"
	"path/filepath"
	"testing"
)

// TestBuiltinSuite verifies the built-in suite has one task per type.
func TestBuiltinSuite(t *testing.T) {
	suite := Builtin()
	if len(suite.Tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(suite.Tasks))
	}
	types := map[Type]bool{}
	for _, item := range suite.Tasks {
		types[item.Type] = true
		if item.Prompt == "" {
			t.Fatalf("task %s has empty prompt", item.ID)
		}
	}
	if len(types) != 3 {
		t.Fatalf("types = %v, want all three", types)
	}
}

// TestLoadSuiteValid verifies a YAML suite loads and validates.
func TestLoadSuiteValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yml")
	body := `version: 1
tasks:
  - id: code_custom
    type: code_generation
    title: Fizzbuzz
    prompt: "Write fizzbuzz in Python."
    criteria: ["Is runnable"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("load suite: %v", err)
	}
	if _, ok := suite.ByID("code_custom"); !ok {
		t.Fatalf("task code_custom missing")
	}
}

// TestParseSuiteRejectsDuplicates verifies duplicate task ids are rejected.
func TestParseSuiteRejectsDuplicates(t *testing.T) {
	body := []byte(`version: 1
tasks:
  - id: a
    type: code_generation
    prompt: "x"
  - id: a
    type: code_generation
    prompt: "y"
`)
	if _, err := ParseSuite(body); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

// TestParseSuiteRejectsUnknownType verifies unknown task types are rejected.
func TestParseSuiteRejectsUnknownType(t *testing.T) {
	body := []byte(`version: 1
tasks:
  - id: a
    type: trivia
    prompt: "x"
`)
	if _, err := ParseSuite(body); err == nil {
		t.Fatalf("expected unknown type error")
	}
}

// TestSuiteFilterPreservesOrder verifies filtering keeps suite order.
func TestSuiteFilterPreservesOrder(t *testing.T) {
	suite := Builtin()
	filtered := suite.Filter([]string{"proc_001", "code_001"})
	if len(filtered.Tasks) != 2 {
		t.Fatalf("filtered = %d, want 2", len(filtered.Tasks))
	}
	if filtered.Tasks[0].ID != "code_001" || filtered.Tasks[1].ID != "proc_001" {
		t.Fatalf("order = %s,%s", filtered.Tasks[0].ID, filtered.Tasks[1].ID)
	}
}
