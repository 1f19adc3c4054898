// Package action provides the shared action-buffer primitives used by the
// actuator aggregation layer.
//
// A policy (or any external step driver) produces actions as two flat
// buffers per simulation step: one of continuous (float32) values and one of
// discrete (int32) values. Each actuator consumes a contiguous range of each
// buffer. The types in this package describe those ranges without copying:
//
//   - Spec counts how many continuous and discrete slots an actuator (or a
//     whole group of actuators) occupies.
//   - Segment is a read-only view over a contiguous range of a shared buffer.
//
// Segments never own their buffer. They are issued by the aggregation layer
// during dispatch and become stale as soon as the owning buffers are resized;
// holders must not retain a segment across a resize. Each segment carries the
// layout generation it was built under so staleness can be detected.
package action
