package action

import (
	"errors"
	"fmt"
)

// Segment errors.
var (
	ErrSegmentOutOfRange = errors.New("segment out of range")
)

// Value constrains the element types an action buffer can hold:
// float32 for continuous actions, int32 for discrete actions.
type Value interface {
	~float32 | ~int32
}

// Segment is a read-only view over a contiguous range of a shared action
// buffer. It does not own the buffer and never copies it.
//
// Segments are issued by the aggregation layer during dispatch. A segment is
// only valid until the owning buffers are resized; the Generation method
// reports the layout generation the segment was built under so callers can
// detect stale views.
type Segment[T Value] struct {
	buffer     []T
	offset     int
	length     int
	generation uint64
}

// NewSegment creates a segment over buffer[offset : offset+length].
// Returns ErrSegmentOutOfRange if the range does not fit the buffer.
func NewSegment[T Value](buffer []T, offset, length int, generation uint64) (Segment[T], error) {
	if offset < 0 || length < 0 || offset+length > len(buffer) {
		return Segment[T]{}, fmt.Errorf("%w: [%d, %d) over buffer of length %d",
			ErrSegmentOutOfRange, offset, offset+length, len(buffer))
	}
	return Segment[T]{
		buffer:     buffer,
		offset:     offset,
		length:     length,
		generation: generation,
	}, nil
}

// Len returns the number of elements in the segment.
func (s Segment[T]) Len() int {
	return s.length
}

// Offset returns the segment's start offset within the owning buffer.
func (s Segment[T]) Offset() int {
	return s.offset
}

// Generation returns the layout generation the segment was built under.
// A segment whose generation differs from the owning aggregator's current
// generation is stale and must not be used.
func (s Segment[T]) Generation() uint64 {
	return s.generation
}

// Get returns the element at index i within the segment.
// It panics if i is out of range, matching slice indexing semantics.
func (s Segment[T]) Get(i int) T {
	if i < 0 || i >= s.length {
		panic(fmt.Sprintf("action: segment index %d out of range [0, %d)", i, s.length))
	}
	return s.buffer[s.offset+i]
}

// Values returns the segment's backing slice window.
// The returned slice aliases the shared buffer: callers must treat it as
// read-only and must not retain it past the dispatch call that delivered
// the segment.
func (s Segment[T]) Values() []T {
	return s.buffer[s.offset : s.offset+s.length : s.offset+s.length]
}

// Clone returns a copy of the segment's elements that the caller owns.
func (s Segment[T]) Clone() []T {
	out := make([]T, s.length)
	copy(out, s.buffer[s.offset:s.offset+s.length])
	return out
}
