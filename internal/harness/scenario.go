package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines an end-to-end CLI scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are CLI invocations, run in order against one database.
	Steps []Step `yaml:"steps"`

	// Final is the expected store contents after the last step.
	// If nil, the final state is not checked.
	Final *FinalState `yaml:"final,omitempty"`
}

// Step is a single CLI invocation.
type Step struct {
	// Args are the command-line arguments, without the program name.
	Args []string `yaml:"args"`

	// Exit is the expected exit code.
	Exit int `yaml:"exit,omitempty"`
}

// FinalState lists every todo expected in the store, in id order.
type FinalState struct {
	Todos []ExpectedTodo `yaml:"todos"`
}

// ExpectedTodo is one expected row.
type ExpectedTodo struct {
	ID    int64  `yaml:"id"`
	Title string `yaml:"title"`
	Done  bool   `yaml:"done"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// validateScenario checks required fields.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Exit < 0 {
			return fmt.Errorf("steps[%d]: exit must not be negative", i)
		}
	}

	return nil
}
