// Package policy provides action sources for the aggregation layer: the
// producers of the flat per-step buffers a Manager consumes, and the legacy
// adapter for callers that still supply a single undifferentiated buffer.
//
// A Source fills a continuous and a discrete buffer matching an
// action.Spec each step. The built-in sources are deliberately simple
// (constant and seeded-random values); a real policy sits behind the same
// interface.
package policy
