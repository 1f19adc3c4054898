// Package loader parses YAML actuation scenarios used by the test harness.
//
// A scenario declares a set of actuators (name and slot counts) and a step
// script of aggregation operations with optional per-actuator delivery
// expectations. Scenarios keep the integration tests data-driven: new
// layouts and edge cases are added as files, not code.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ops a scenario step may use.
const (
	OpSize    = "size"    // EnsureBufferSize
	OpUpdate  = "update"  // UpdateActions with the step's sources
	OpExecute = "execute" // ExecuteActions, then check expectations
	OpSort    = "sort"    // SortByName
	OpReset   = "reset"   // ResetData
	OpFlat    = "flat"    // legacy flat-buffer bridge
)

// Scenario is a declarative actuation test case.
type Scenario struct {
	// ID uniquely identifies the scenario.
	ID string `yaml:"id"`

	// Description explains what the scenario covers.
	Description string `yaml:"description,omitempty"`

	// Actuators declares the rig, in registration order.
	Actuators []ActuatorDecl `yaml:"actuators"`

	// Steps is the operation script, executed in order.
	Steps []Step `yaml:"steps"`
}

// ActuatorDecl declares one actuator of the scenario rig.
type ActuatorDecl struct {
	// Name is the actuator name (sort key).
	Name string `yaml:"name"`

	// Continuous is the number of continuous slots.
	Continuous int `yaml:"continuous,omitempty"`

	// Discrete is the number of discrete slots.
	Discrete int `yaml:"discrete,omitempty"`
}

// Step is one scripted aggregation operation.
type Step struct {
	// Op names the operation (see the Op constants).
	Op string `yaml:"op"`

	// Continuous is the continuous source for update ops (nil clears).
	Continuous []float32 `yaml:"continuous,omitempty"`

	// Discrete is the discrete source for update ops (nil clears).
	Discrete []int32 `yaml:"discrete,omitempty"`

	// Values is the undifferentiated source for flat ops.
	Values []float32 `yaml:"values,omitempty"`

	// WantError expects the operation to fail.
	WantError bool `yaml:"want_error,omitempty"`

	// Expect lists per-actuator delivery expectations, checked after
	// execute ops.
	Expect []Expectation `yaml:"expect,omitempty"`
}

// Expectation describes what one actuator must have received.
type Expectation struct {
	// Actuator is the actuator name.
	Actuator string `yaml:"actuator"`

	// Continuous is the expected continuous delivery.
	Continuous []float32 `yaml:"continuous,omitempty"`

	// Discrete is the expected discrete delivery.
	Discrete []int32 `yaml:"discrete,omitempty"`
}

// LoadError describes a scenario that could not be loaded or validated.
type LoadError struct {
	// File is the scenario file path (empty for in-memory parses).
	File string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the formatted error message.
func (e *LoadError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// validOps is the set of operations a step may use.
var validOps = map[string]bool{
	OpSize:    true,
	OpUpdate:  true,
	OpExecute: true,
	OpSort:    true,
	OpReset:   true,
	OpFlat:    true,
}

// ParseScenario parses a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	// Validate required fields
	if sc.ID == "" {
		return nil, &LoadError{
			Message: "scenario ID is required",
		}
	}

	if len(sc.Steps) == 0 {
		return nil, &LoadError{
			Message: "scenario must have at least one step",
		}
	}

	for i, a := range sc.Actuators {
		if a.Name == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("actuator %d: name is required", i),
			}
		}
		if a.Continuous < 0 || a.Discrete < 0 {
			return nil, &LoadError{
				Message: fmt.Sprintf("actuator %q: slot counts must be non-negative", a.Name),
			}
		}
	}

	for i, step := range sc.Steps {
		if !validOps[step.Op] {
			return nil, &LoadError{
				Message: fmt.Sprintf("step %d: unknown op %q", i, step.Op),
			}
		}
	}

	return &sc, nil
}

// LoadScenario loads a scenario from a file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	sc, err := ParseScenario(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return sc, nil
}

// LoadDirectory loads all scenarios from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, name)
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
