// Package actuator provides the aggregation core that glues a flat policy
// action output to per-actuator consumption in a simulation step loop.
//
// A Manager owns an ordered sequence of actuators and two flat action
// buffers, one continuous (float32) and one discrete (int32). Each step the
// external loop copies a fresh action source into the buffers with
// UpdateActions and then calls ExecuteActions, which slices the buffers into
// per-actuator segments (no copying) and hands each actuator exactly its
// range.
//
// The Manager does not create or destroy actuators and never auto-detects
// layout changes: after any membership or slot-count change the owner must
// call EnsureBufferSize before the next update. SortByName gives a
// deterministic dispatch order, and with it a reproducible buffer layout,
// independent of registration order.
//
// All operations are synchronous and single-threaded; the Manager provides
// no locking. One step must complete before the next begins.
package actuator
