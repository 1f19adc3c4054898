package log

import (
	"time"
)

// Event represents a step-trace event captured by the aggregation layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the aggregator session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Step is the simulation step counter at the time of the event.
	Step uint64 `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Sizing   *SizingEvent    `cbor:"5,keyasint,omitempty"` // Buffer (re)allocation
	Update   *UpdateEvent    `cbor:"6,keyasint,omitempty"` // Buffer update from a source
	Dispatch *DispatchEvent  `cbor:"7,keyasint,omitempty"` // Segment delivery to actuators
	Reset    *ResetEvent     `cbor:"8,keyasint,omitempty"` // Lifecycle reset
	Error    *ErrorEventData `cbor:"9,keyasint,omitempty"` // Errors in any operation
}

// Category classifies the event type.
type Category uint8

const (
	// CategorySizing indicates a buffer (re)allocation event.
	CategorySizing Category = 0
	// CategoryUpdate indicates a buffer update event.
	CategoryUpdate Category = 1
	// CategoryDispatch indicates a segment dispatch event.
	CategoryDispatch Category = 2
	// CategoryReset indicates a lifecycle reset event.
	CategoryReset Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySizing:
		return "SIZING"
	case CategoryUpdate:
		return "UPDATE"
	case CategoryDispatch:
		return "DISPATCH"
	case CategoryReset:
		return "RESET"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SizingEvent captures a buffer (re)allocation.
type SizingEvent struct {
	// ContinuousSize is the new continuous buffer length.
	ContinuousSize int `cbor:"1,keyasint"`

	// DiscreteSize is the new discrete buffer length.
	DiscreteSize int `cbor:"2,keyasint"`

	// Actuators is the number of actuators contributing to the layout.
	Actuators int `cbor:"3,keyasint"`

	// Generation is the layout generation after sizing.
	Generation uint64 `cbor:"4,keyasint"`
}

// UpdateEvent captures a buffer update from an external source.
type UpdateEvent struct {
	// ContinuousLen is the continuous source length (0 when absent).
	ContinuousLen int `cbor:"1,keyasint"`

	// DiscreteLen is the discrete source length (0 when absent).
	DiscreteLen int `cbor:"2,keyasint"`

	// ContinuousCleared indicates the continuous buffer was zero-filled
	// because no source was supplied.
	ContinuousCleared bool `cbor:"3,keyasint,omitempty"`

	// DiscreteCleared indicates the discrete buffer was zero-filled
	// because no source was supplied.
	DiscreteCleared bool `cbor:"4,keyasint,omitempty"`
}

// DispatchEvent captures a full dispatch pass over the actuator sequence.
type DispatchEvent struct {
	// Deliveries lists the segment ranges handed to each actuator,
	// in dispatch order.
	Deliveries []Delivery `cbor:"1,keyasint"`
}

// Delivery records the segment ranges delivered to one actuator.
type Delivery struct {
	// Actuator is the actuator name.
	Actuator string `cbor:"1,keyasint"`

	// ContinuousOffset is the start offset in the continuous buffer.
	ContinuousOffset int `cbor:"2,keyasint"`

	// ContinuousLen is the number of continuous slots delivered.
	ContinuousLen int `cbor:"3,keyasint"`

	// DiscreteOffset is the start offset in the discrete buffer.
	DiscreteOffset int `cbor:"4,keyasint"`

	// DiscreteLen is the number of discrete slots delivered.
	DiscreteLen int `cbor:"5,keyasint"`
}

// ResetEvent captures a lifecycle reset forwarded to all actuators.
type ResetEvent struct {
	// Actuators is the number of actuators that received the reset.
	Actuators int `cbor:"1,keyasint"`
}

// ErrorEventData captures errors in any aggregation operation.
type ErrorEventData struct {
	// Op names the operation that failed (e.g. "UpdateActions").
	Op string `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`
}
