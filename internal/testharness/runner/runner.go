// Package runner executes actuation scenarios against a live manager and
// verifies the deliveries each actuator received.
package runner

import (
	"fmt"

	"github.com/stepsim/actuation-go/internal/testharness/loader"
	"github.com/stepsim/actuation-go/pkg/action"
	"github.com/stepsim/actuation-go/pkg/actuator"
	"github.com/stepsim/actuation-go/pkg/log"
	"github.com/stepsim/actuation-go/pkg/policy"
)

// recorder is the harness actuator: it declares scripted slot counts and
// keeps the last delivered actions for expectation checks.
type recorder struct {
	name       string
	continuous int
	discrete   int

	lastContinuous []float32
	lastDiscrete   []int32
	resets         int
}

func (r *recorder) Name() string         { return r.name }
func (r *recorder) ContinuousSlots() int { return r.continuous }
func (r *recorder) DiscreteSlots() int   { return r.discrete }

func (r *recorder) OnActionReceived(continuous action.Segment[float32], discrete action.Segment[int32]) {
	r.lastContinuous = continuous.Clone()
	r.lastDiscrete = discrete.Clone()
}

func (r *recorder) Reset() {
	r.lastContinuous = nil
	r.lastDiscrete = nil
	r.resets++
}

// Result reports what a scenario run observed.
type Result struct {
	// ScenarioID is the executed scenario's ID.
	ScenarioID string

	// Steps is the number of script steps executed.
	Steps int

	// Dispatches is the number of execute ops performed.
	Dispatches int
}

// Run executes the scenario and returns an error describing the first
// violated expectation, if any. Trace events are sent to the given logger
// (nil disables tracing).
func Run(sc *loader.Scenario, logger log.Logger) (*Result, error) {
	m := actuator.NewManager()
	m.SetLogger(logger)

	recorders := make(map[string]*recorder, len(sc.Actuators))
	for _, decl := range sc.Actuators {
		r := &recorder{
			name:       decl.Name,
			continuous: decl.Continuous,
			discrete:   decl.Discrete,
		}
		recorders[decl.Name] = r
		m.Add(r)
	}

	result := &Result{ScenarioID: sc.ID}

	for i, step := range sc.Steps {
		err := runStep(m, step)
		if step.WantError {
			if err == nil {
				return nil, fmt.Errorf("scenario %q step %d (%s): expected error, got none", sc.ID, i, step.Op)
			}
		} else if err != nil {
			return nil, fmt.Errorf("scenario %q step %d (%s): %w", sc.ID, i, step.Op, err)
		}

		if step.Op == loader.OpExecute && err == nil {
			result.Dispatches++
			if err := checkExpectations(sc.ID, i, step.Expect, recorders); err != nil {
				return nil, err
			}
		}
		result.Steps++
	}

	return result, nil
}

func runStep(m *actuator.Manager, step loader.Step) error {
	switch step.Op {
	case loader.OpSize:
		m.EnsureBufferSize()
		return nil
	case loader.OpUpdate:
		return m.UpdateActions(step.Continuous, step.Discrete)
	case loader.OpExecute:
		return m.ExecuteActions()
	case loader.OpSort:
		m.SortByName()
		return nil
	case loader.OpReset:
		m.ResetData()
		return nil
	case loader.OpFlat:
		return policy.ApplyFlat(m, step.Values)
	default:
		// Unreachable for validated scenarios.
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func checkExpectations(scenarioID string, stepIndex int, expectations []loader.Expectation, recorders map[string]*recorder) error {
	for _, want := range expectations {
		r, ok := recorders[want.Actuator]
		if !ok {
			return fmt.Errorf("scenario %q step %d: expectation names unknown actuator %q",
				scenarioID, stepIndex, want.Actuator)
		}
		if !floatsEqual(r.lastContinuous, want.Continuous) {
			return fmt.Errorf("scenario %q step %d: actuator %q continuous = %v, want %v",
				scenarioID, stepIndex, want.Actuator, r.lastContinuous, want.Continuous)
		}
		if !intsEqual(r.lastDiscrete, want.Discrete) {
			return fmt.Errorf("scenario %q step %d: actuator %q discrete = %v, want %v",
				scenarioID, stepIndex, want.Actuator, r.lastDiscrete, want.Discrete)
		}
	}
	return nil
}

func floatsEqual(got, want []float32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func intsEqual(got, want []int32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
