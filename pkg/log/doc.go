// Package log provides structured step-trace logging for the actuation
// aggregation layer.
//
// Every operation the aggregator performs in a simulation step (sizing,
// buffer update, dispatch, reset) can be captured as an Event. Events are
// delivered to a Logger implementation chosen by the application:
//
//   - NoopLogger discards everything (the default).
//   - FileLogger appends CBOR-encoded events to a trace file.
//   - SlogAdapter bridges events into a standard library slog.Logger.
//   - MultiLogger fans events out to several loggers at once.
//
// Trace files written by FileLogger can be read back and filtered with
// Reader, which streams events without loading the whole file.
package log
