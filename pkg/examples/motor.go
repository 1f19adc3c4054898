package examples

import (
	"github.com/stepsim/actuation-go/pkg/action"
)

// Motor is a continuous-only actuator: one float32 command per axis.
type Motor struct {
	name string
	axes int

	command []float32
	steps   int
}

// NewMotor creates a motor actuator with the given number of axes.
func NewMotor(name string, axes int) *Motor {
	return &Motor{
		name:    name,
		axes:    axes,
		command: make([]float32, axes),
	}
}

// Name returns the motor name.
func (m *Motor) Name() string {
	return m.name
}

// ContinuousSlots returns the number of axes.
func (m *Motor) ContinuousSlots() int {
	return m.axes
}

// DiscreteSlots returns 0; motors consume no discrete actions.
func (m *Motor) DiscreteSlots() int {
	return 0
}

// OnActionReceived copies the delivered axis commands into the motor's own
// storage.
func (m *Motor) OnActionReceived(continuous action.Segment[float32], _ action.Segment[int32]) {
	copy(m.command, continuous.Values())
	m.steps++
}

// Reset zeroes the stored command.
func (m *Motor) Reset() {
	clear(m.command)
	m.steps = 0
}

// Command returns a copy of the last received axis commands.
func (m *Motor) Command() []float32 {
	out := make([]float32, len(m.command))
	copy(out, m.command)
	return out
}

// Steps returns the number of dispatches received since the last reset.
func (m *Motor) Steps() int {
	return m.steps
}
