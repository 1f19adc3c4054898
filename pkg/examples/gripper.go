package examples

import (
	"github.com/stepsim/actuation-go/pkg/action"
)

// GripperMode is the discrete operating mode of a gripper.
type GripperMode int32

const (
	// GripperModeIdle holds the current grip.
	GripperModeIdle GripperMode = 0
	// GripperModeOpen opens the gripper.
	GripperModeOpen GripperMode = 1
	// GripperModeClose closes the gripper.
	GripperModeClose GripperMode = 2
)

// String returns the mode name.
func (g GripperMode) String() string {
	switch g {
	case GripperModeIdle:
		return "IDLE"
	case GripperModeOpen:
		return "OPEN"
	case GripperModeClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Gripper is a mixed actuator: one continuous force slot and one discrete
// mode slot.
type Gripper struct {
	name string

	force float32
	mode  GripperMode
	steps int
}

// NewGripper creates a gripper actuator.
func NewGripper(name string) *Gripper {
	return &Gripper{name: name}
}

// Name returns the gripper name.
func (g *Gripper) Name() string {
	return g.name
}

// ContinuousSlots returns 1 (grip force).
func (g *Gripper) ContinuousSlots() int {
	return 1
}

// DiscreteSlots returns 1 (operating mode).
func (g *Gripper) DiscreteSlots() int {
	return 1
}

// OnActionReceived stores the delivered force and mode.
func (g *Gripper) OnActionReceived(continuous action.Segment[float32], discrete action.Segment[int32]) {
	g.force = continuous.Get(0)
	g.mode = GripperMode(discrete.Get(0))
	g.steps++
}

// Reset returns the gripper to idle with zero force.
func (g *Gripper) Reset() {
	g.force = 0
	g.mode = GripperModeIdle
	g.steps = 0
}

// Force returns the last received grip force.
func (g *Gripper) Force() float32 {
	return g.force
}

// Mode returns the last received operating mode.
func (g *Gripper) Mode() GripperMode {
	return g.mode
}

// Steps returns the number of dispatches received since the last reset.
func (g *Gripper) Steps() int {
	return g.steps
}
