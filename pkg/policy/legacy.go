package policy

import (
	"github.com/stepsim/actuation-go/pkg/actuator"
)

// ApplyFlat bridges a legacy single-buffer action source into a manager.
//
// Old callers supply one flat float buffer believed to contain either
// all-continuous or all-discrete values, never both. Which one is inferred
// from the manager's current buffer sizes: if the continuous buffer is
// non-empty the flat source is treated as continuous values and the
// discrete buffer is cleared; otherwise, if the discrete buffer is
// non-empty, each value is converted to int32 (truncated toward zero, not
// rounded) and treated as discrete. When both buffers are empty the call
// is a no-op.
//
// The truncating conversion is load-bearing: artifacts trained against the
// old path depend on it, so it must not be changed to rounding. New callers
// should use Manager.UpdateActions directly.
func ApplyFlat(m *actuator.Manager, flat []float32) error {
	switch {
	case m.ContinuousSize() > 0:
		return m.UpdateActions(flat, nil)
	case m.DiscreteSize() > 0:
		discrete := make([]int32, len(flat))
		for i, v := range flat {
			discrete[i] = int32(v)
		}
		return m.UpdateActions(nil, discrete)
	default:
		return nil
	}
}
