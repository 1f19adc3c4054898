package actuator

import (
	"github.com/stepsim/actuation-go/pkg/action"
)

// Actuator is the capability contract a control unit exposes to the
// aggregation layer. Implementations decide what their action values mean;
// the Manager only consumes the name, the slot counts, and the two
// lifecycle operations.
type Actuator interface {
	// Name returns the actuator name. Names are the sort key for
	// deterministic dispatch order; they should be stable across runs.
	Name() string

	// ContinuousSlots returns the number of continuous (float32) action
	// slots the actuator consumes per step.
	ContinuousSlots() int

	// DiscreteSlots returns the number of discrete (int32) action slots
	// the actuator consumes per step.
	DiscreteSlots() int

	// OnActionReceived delivers the actuator's slices of the shared action
	// buffers for the current step. The segments are read-only views and
	// must not be retained past the call.
	OnActionReceived(continuous action.Segment[float32], discrete action.Segment[int32])

	// Reset clears the actuator's internal step state.
	Reset()
}

// SpecOf returns the action spec for a single actuator.
func SpecOf(a Actuator) action.Spec {
	return action.Spec{
		Continuous: a.ContinuousSlots(),
		Discrete:   a.DiscreteSlots(),
	}
}
