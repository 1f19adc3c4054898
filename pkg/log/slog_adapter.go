package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see step events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.Uint64("step", event.Step),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Sizing != nil:
		attrs = append(attrs,
			slog.Int("continuous_size", event.Sizing.ContinuousSize),
			slog.Int("discrete_size", event.Sizing.DiscreteSize),
			slog.Int("actuators", event.Sizing.Actuators),
			slog.Uint64("generation", event.Sizing.Generation),
		)
	case event.Update != nil:
		attrs = append(attrs,
			slog.Int("continuous_len", event.Update.ContinuousLen),
			slog.Int("discrete_len", event.Update.DiscreteLen),
		)
		if event.Update.ContinuousCleared {
			attrs = append(attrs, slog.Bool("continuous_cleared", true))
		}
		if event.Update.DiscreteCleared {
			attrs = append(attrs, slog.Bool("discrete_cleared", true))
		}
	case event.Dispatch != nil:
		attrs = append(attrs, slog.Int("deliveries", len(event.Dispatch.Deliveries)))
	case event.Reset != nil:
		attrs = append(attrs, slog.Int("actuators", event.Reset.Actuators))
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error_msg", event.Error.Message),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "actuation", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
