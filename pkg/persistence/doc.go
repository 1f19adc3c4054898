// Package persistence provides caller-side serialization of aggregation
// state. The aggregation core itself persists nothing across restarts; this
// package captures a manager's layout and buffer contents into a Snapshot
// that can be stored as a JSON file (SnapshotStore) or encoded compactly
// as CBOR for trace attachments.
package persistence
