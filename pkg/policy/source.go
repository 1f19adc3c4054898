package policy

import (
	"math/rand"

	"github.com/stepsim/actuation-go/pkg/action"
)

// Source produces the flat per-step action buffers for a given spec.
// Implementations must return slices whose lengths equal the spec's
// continuous and discrete counts; a nil slice stands for "no actions"
// and makes the manager zero-fill the corresponding buffer.
type Source interface {
	// Actions returns the continuous and discrete action buffers for one
	// step. The caller takes ownership of the returned slices.
	Actions(spec action.Spec) ([]float32, []int32)
}

// ConstantSource fills every continuous slot with Continuous and every
// discrete slot with Discrete. Useful for tests and wiring checks.
type ConstantSource struct {
	// Continuous is the value for every continuous slot.
	Continuous float32

	// Discrete is the value for every discrete slot.
	Discrete int32
}

// Actions returns buffers filled with the configured constants.
func (s ConstantSource) Actions(spec action.Spec) ([]float32, []int32) {
	continuous := make([]float32, spec.Continuous)
	for i := range continuous {
		continuous[i] = s.Continuous
	}
	discrete := make([]int32, spec.Discrete)
	for i := range discrete {
		discrete[i] = s.Discrete
	}
	return continuous, discrete
}

// RandomSource fills continuous slots with uniform values in
// [Low, High) and discrete slots with uniform branch indices in
// [0, Branches). The sequence is deterministic for a given seed.
type RandomSource struct {
	rng *rand.Rand

	// Low and High bound the continuous values. Defaults to [-1, 1).
	Low, High float32

	// Branches is the exclusive upper bound for discrete values.
	// Defaults to 2.
	Branches int32
}

// NewRandomSource creates a RandomSource with the given seed and the
// default value ranges.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{
		rng:      rand.New(rand.NewSource(seed)),
		Low:      -1,
		High:     1,
		Branches: 2,
	}
}

// Actions returns freshly drawn random buffers for the spec.
func (s *RandomSource) Actions(spec action.Spec) ([]float32, []int32) {
	continuous := make([]float32, spec.Continuous)
	for i := range continuous {
		continuous[i] = s.Low + s.rng.Float32()*(s.High-s.Low)
	}
	discrete := make([]int32, spec.Discrete)
	for i := range discrete {
		discrete[i] = s.rng.Int31n(s.Branches)
	}
	return continuous, discrete
}

// Compile-time interface satisfaction checks.
var (
	_ Source = ConstantSource{}
	_ Source = (*RandomSource)(nil)
)
