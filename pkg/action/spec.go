package action

// Spec describes how many slots an actuator (or a group of actuators)
// occupies in each of the two flat action buffers.
type Spec struct {
	// Continuous is the number of continuous (float32) slots.
	Continuous int

	// Discrete is the number of discrete (int32) slots.
	Discrete int
}

// Combine returns the element-wise sum of the given specs.
// The order of the specs does not matter.
func Combine(specs ...Spec) Spec {
	var total Spec
	for _, s := range specs {
		total.Continuous += s.Continuous
		total.Discrete += s.Discrete
	}
	return total
}

// Total returns the combined number of slots across both buffers.
func (s Spec) Total() int {
	return s.Continuous + s.Discrete
}

// Empty reports whether the spec occupies no slots in either buffer.
func (s Spec) Empty() bool {
	return s.Continuous == 0 && s.Discrete == 0
}
