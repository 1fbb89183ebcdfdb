package task

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSuite reads and validates a task suite from a YAML file.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read task suite: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite decodes a single-document YAML task suite, rejecting unknown fields.
func ParseSuite(data []byte) (Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return Suite{}, fmt.Errorf("parse task suite: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Suite{}, fmt.Errorf("parse task suite: multiple YAML documents are not supported")
		}
		return Suite{}, fmt.Errorf("parse task suite: %w", err)
	}
	if err := validateSuite(suite); err != nil {
		return Suite{}, err
	}
	return suite, nil
}

func validateSuite(suite Suite) error {
	if len(suite.Tasks) == 0 {
		return fmt.Errorf("task suite: no tasks defined")
	}
	seen := make(map[string]bool, len(suite.Tasks))
	for _, t := range suite.Tasks {
		if t.ID == "" {
			return fmt.Errorf("task suite: task id is empty")
		}
		if seen[t.ID] {
			return fmt.Errorf("task suite: duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
		switch t.Type {
		case TypeCodeGeneration, TypeItineraryPlanning, TypeProcedureStructuring:
		default:
			return fmt.Errorf("task suite: task %q has unknown type %q", t.ID, t.Type)
		}
		if t.Prompt == "" {
			return fmt.Errorf("task suite: task %q has no prompt", t.ID)
		}
	}
	return nil
}
