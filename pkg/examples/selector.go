package examples

import (
	"github.com/stepsim/actuation-go/pkg/action"
)

// Selector is a discrete-only actuator: a bank of switches, one int32
// branch choice per switch.
type Selector struct {
	name     string
	switches int

	choices []int32
	steps   int
}

// NewSelector creates a selector actuator with the given number of switches.
func NewSelector(name string, switches int) *Selector {
	return &Selector{
		name:     name,
		switches: switches,
		choices:  make([]int32, switches),
	}
}

// Name returns the selector name.
func (s *Selector) Name() string {
	return s.name
}

// ContinuousSlots returns 0; selectors consume no continuous actions.
func (s *Selector) ContinuousSlots() int {
	return 0
}

// DiscreteSlots returns the number of switches.
func (s *Selector) DiscreteSlots() int {
	return s.switches
}

// OnActionReceived copies the delivered branch choices into the selector's
// own storage.
func (s *Selector) OnActionReceived(_ action.Segment[float32], discrete action.Segment[int32]) {
	copy(s.choices, discrete.Values())
	s.steps++
}

// Reset zeroes the stored choices.
func (s *Selector) Reset() {
	clear(s.choices)
	s.steps = 0
}

// Choices returns a copy of the last received branch choices.
func (s *Selector) Choices() []int32 {
	out := make([]int32, len(s.choices))
	copy(out, s.choices)
	return out
}

// Steps returns the number of dispatches received since the last reset.
func (s *Selector) Steps() int {
	return s.steps
}
