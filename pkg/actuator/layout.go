package actuator

// Range is a contiguous offset range within one of the flat action buffers.
type Range struct {
	// Offset is the start index within the buffer.
	Offset int

	// Length is the number of slots in the range.
	Length int
}

// End returns the exclusive end index of the range.
func (r Range) End() int {
	return r.Offset + r.Length
}

// LayoutEntry maps one actuator to its offset ranges in the continuous and
// discrete buffers.
type LayoutEntry struct {
	// Name is the actuator name.
	Name string

	// Continuous is the actuator's range in the continuous buffer.
	Continuous Range

	// Discrete is the actuator's range in the discrete buffer.
	Discrete Range
}

// Layout returns the per-actuator offset ranges implied by the current
// sequence order and slot counts. The layout is derived from the sequence,
// not from the buffers: it is valid for dispatch only after
// EnsureBufferSize has been called for the current generation.
func (m *Manager) Layout() []LayoutEntry {
	entries := make([]LayoutEntry, 0, len(m.actuators))

	contOffset, discOffset := 0, 0
	for _, a := range m.actuators {
		nc, nd := a.ContinuousSlots(), a.DiscreteSlots()
		entries = append(entries, LayoutEntry{
			Name:       a.Name(),
			Continuous: Range{Offset: contOffset, Length: nc},
			Discrete:   Range{Offset: discOffset, Length: nd},
		})
		contOffset += nc
		discOffset += nd
	}
	return entries
}
