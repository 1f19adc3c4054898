package actuator

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stepsim/actuation-go/pkg/action"
	"github.com/stepsim/actuation-go/pkg/log"
)

// Manager aggregates the action slots of an ordered actuator sequence into
// two flat buffers and dispatches per-actuator segments each step.
//
// Dispatch order is insertion order until SortByName is called. Every
// mutation that affects the buffer layout (Add, Insert, Remove, SortByName,
// EnsureBufferSize) increments the layout generation; segments carry the
// generation they were built under.
//
// Manager is not safe for concurrent use. All operations must be called
// from a single step-loop goroutine, one step at a time.
type Manager struct {
	actuators []Actuator

	continuous []float32
	discrete   []int32

	// generation counts layout-affecting mutations; sizedGeneration is the
	// generation captured by the last EnsureBufferSize.
	generation      uint64
	sizedGeneration uint64

	// strict enables the stale-layout check before dispatch.
	strict bool

	sessionID string
	step      uint64
	logger    log.Logger
}

// NewManager creates an empty manager with a fresh session ID.
// Logging is disabled until SetLogger is called.
func NewManager() *Manager {
	return &Manager{
		sessionID: uuid.New().String(),
		logger:    log.NoopLogger{},
	}
}

// SetLogger sets the step-trace logger. Passing nil disables logging.
func (m *Manager) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	m.logger = logger
}

// SetStrict enables or disables the stale-layout check: when enabled,
// ExecuteActions refuses to dispatch if the layout changed after the last
// EnsureBufferSize.
func (m *Manager) SetStrict(strict bool) {
	m.strict = strict
}

// SessionID returns the manager's session identifier, stamped on every
// trace event.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Step returns the number of completed dispatch passes.
func (m *Manager) Step() uint64 {
	return m.step
}

// Generation returns the current layout generation.
func (m *Manager) Generation() uint64 {
	return m.generation
}

// Add appends actuators to the end of the sequence.
// The buffer layout becomes stale; call EnsureBufferSize before the next
// update.
func (m *Manager) Add(actuators ...Actuator) {
	m.actuators = append(m.actuators, actuators...)
	m.generation++
}

// Insert inserts an actuator at index i, shifting later actuators up.
// Returns ErrIndexOutOfRange if i is not in [0, Len()].
func (m *Manager) Insert(i int, a Actuator) error {
	if i < 0 || i > len(m.actuators) {
		return fmt.Errorf("%w: %d with %d actuators", ErrIndexOutOfRange, i, len(m.actuators))
	}
	m.actuators = append(m.actuators, nil)
	copy(m.actuators[i+1:], m.actuators[i:])
	m.actuators[i] = a
	m.generation++
	return nil
}

// Remove removes the first actuator with the given name.
// Returns ErrActuatorNotFound if no actuator matches.
func (m *Manager) Remove(name string) error {
	for i, a := range m.actuators {
		if a.Name() == name {
			m.actuators = append(m.actuators[:i], m.actuators[i+1:]...)
			m.generation++
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrActuatorNotFound, name)
}

// At returns the actuator at index i.
// It panics if i is out of range, matching slice indexing semantics.
func (m *Manager) At(i int) Actuator {
	return m.actuators[i]
}

// Len returns the number of actuators in the sequence.
func (m *Manager) Len() int {
	return len(m.actuators)
}

// Actuators returns a copy of the actuator sequence in dispatch order.
func (m *Manager) Actuators() []Actuator {
	out := make([]Actuator, len(m.actuators))
	copy(out, m.actuators)
	return out
}

// ActionSpec returns the combined slot counts of all actuators in the
// current sequence.
func (m *Manager) ActionSpec() action.Spec {
	specs := make([]action.Spec, 0, len(m.actuators))
	for _, a := range m.actuators {
		specs = append(specs, SpecOf(a))
	}
	return action.Combine(specs...)
}

// ContinuousSize returns the length of the owned continuous buffer as of
// the last EnsureBufferSize.
func (m *Manager) ContinuousSize() int {
	return len(m.continuous)
}

// DiscreteSize returns the length of the owned discrete buffer as of the
// last EnsureBufferSize.
func (m *Manager) DiscreteSize() int {
	return len(m.discrete)
}

// EnsureBufferSize recomputes the combined slot counts and allocates fresh
// buffers of exactly those lengths, discarding prior contents. Zero-length
// buffers are valid (an actuator-less manager).
//
// Must be called after any membership or slot-count change; the manager
// does not auto-detect staleness. Resizing invalidates all previously
// issued segments.
func (m *Manager) EnsureBufferSize() {
	spec := m.ActionSpec()
	m.generation++
	m.sizedGeneration = m.generation
	m.continuous = make([]float32, spec.Continuous)
	m.discrete = make([]int32, spec.Discrete)

	event := m.newEvent(log.CategorySizing)
	event.Sizing = &log.SizingEvent{
		ContinuousSize: spec.Continuous,
		DiscreteSize:   spec.Discrete,
		Actuators:      len(m.actuators),
		Generation:     m.generation,
	}
	m.logger.Log(event)
}

// UpdateActions copies the given sources into the owned buffers, fully
// replacing prior contents. A nil or empty source zero-fills the
// corresponding buffer. A non-empty source whose length differs from the
// destination returns ErrSizeMismatch; the caller must treat this as a
// programming error (stale sizing), not a retryable condition.
func (m *Manager) UpdateActions(continuous []float32, discrete []int32) error {
	contCleared, err := updateBuffer(m.continuous, continuous)
	if err != nil {
		err = fmt.Errorf("continuous: %w", err)
		m.logError("UpdateActions", err)
		return err
	}
	discCleared, err := updateBuffer(m.discrete, discrete)
	if err != nil {
		err = fmt.Errorf("discrete: %w", err)
		m.logError("UpdateActions", err)
		return err
	}

	event := m.newEvent(log.CategoryUpdate)
	event.Update = &log.UpdateEvent{
		ContinuousLen:     len(continuous),
		DiscreteLen:       len(discrete),
		ContinuousCleared: contCleared,
		DiscreteCleared:   discCleared,
	}
	m.logger.Log(event)
	return nil
}

// updateBuffer zero-fills dst when src is absent, otherwise copies src into
// dst after checking that the lengths match exactly.
func updateBuffer[T action.Value](dst, src []T) (cleared bool, err error) {
	if len(src) == 0 {
		clear(dst)
		return true, nil
	}
	if len(src) != len(dst) {
		return false, fmt.Errorf("%w: source length %d, buffer length %d",
			ErrSizeMismatch, len(src), len(dst))
	}
	copy(dst, src)
	return false, nil
}

// ExecuteActions iterates the actuator sequence in stored order, slicing
// each actuator's continuous and discrete segments out of the owned buffers
// and invoking its OnActionReceived. The delivered segments exactly
// partition each buffer: no gaps, no overlaps.
//
// Returns an error if the buffers are smaller than the sequence demands
// (stale sizing), or, in strict mode, if the layout changed after the last
// EnsureBufferSize.
func (m *Manager) ExecuteActions() error {
	if m.strict && m.generation != m.sizedGeneration {
		err := fmt.Errorf("%w: generation %d, buffers sized at generation %d",
			ErrStaleLayout, m.generation, m.sizedGeneration)
		m.logError("ExecuteActions", err)
		return err
	}

	deliveries := make([]log.Delivery, 0, len(m.actuators))

	contOffset, discOffset := 0, 0
	for _, a := range m.actuators {
		nc, nd := a.ContinuousSlots(), a.DiscreteSlots()

		continuous, err := action.NewSegment(m.continuous, contOffset, nc, m.generation)
		if err != nil {
			err = fmt.Errorf("continuous segment for %q: %w", a.Name(), err)
			m.logError("ExecuteActions", err)
			return err
		}
		discrete, err := action.NewSegment(m.discrete, discOffset, nd, m.generation)
		if err != nil {
			err = fmt.Errorf("discrete segment for %q: %w", a.Name(), err)
			m.logError("ExecuteActions", err)
			return err
		}

		a.OnActionReceived(continuous, discrete)

		deliveries = append(deliveries, log.Delivery{
			Actuator:         a.Name(),
			ContinuousOffset: contOffset,
			ContinuousLen:    nc,
			DiscreteOffset:   discOffset,
			DiscreteLen:      nd,
		})
		contOffset += nc
		discOffset += nd
	}

	event := m.newEvent(log.CategoryDispatch)
	event.Dispatch = &log.DispatchEvent{Deliveries: deliveries}
	m.logger.Log(event)

	m.step++
	return nil
}

// SortByName reorders the actuator sequence by ascending lexicographic
// name comparison. Sorting is stable and idempotent: sorting an already
// sorted sequence leaves the order unchanged.
//
// Dispatch order is otherwise insertion order, which is not reproducible
// when actuators are registered via unordered discovery; sorting by name
// gives a deterministic buffer layout. Sorting invalidates the current
// layout; call EnsureBufferSize afterwards.
func (m *Manager) SortByName() {
	sort.SliceStable(m.actuators, func(i, j int) bool {
		return m.actuators[i].Name() < m.actuators[j].Name()
	})
	m.generation++
}

// ResetData zero-fills both owned buffers in place, then forwards the reset
// to each actuator in dispatch order.
func (m *Manager) ResetData() {
	clear(m.continuous)
	clear(m.discrete)
	for _, a := range m.actuators {
		a.Reset()
	}

	event := m.newEvent(log.CategoryReset)
	event.Reset = &log.ResetEvent{Actuators: len(m.actuators)}
	m.logger.Log(event)
}

// ContinuousActions returns a copy of the stored continuous buffer.
func (m *Manager) ContinuousActions() []float32 {
	out := make([]float32, len(m.continuous))
	copy(out, m.continuous)
	return out
}

// DiscreteActions returns a copy of the stored discrete buffer.
func (m *Manager) DiscreteActions() []int32 {
	out := make([]int32, len(m.discrete))
	copy(out, m.discrete)
	return out
}

func (m *Manager) newEvent(category log.Category) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: m.sessionID,
		Step:      m.step,
		Category:  category,
	}
}

func (m *Manager) logError(op string, err error) {
	event := m.newEvent(log.CategoryError)
	event.Error = &log.ErrorEventData{Op: op, Message: err.Error()}
	m.logger.Log(event)
}
