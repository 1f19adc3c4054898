package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/stepsim/actuation-go/pkg/actuator"
	"github.com/stepsim/actuation-go/pkg/policy"
)

// runSimulation drives the step loop: every tick it draws fresh action
// buffers from the source, stores them and dispatches. It returns when the
// context is cancelled or the requested step count completes.
func runSimulation(ctx context.Context, logger *slog.Logger, m *actuator.Manager, source policy.Source, interval time.Duration, steps int) {
	logger.Info("simulation started", "interval", interval.String(), "steps", steps)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("simulation stopped", "step", m.Step())
			return
		case <-ticker.C:
			if err := stepOnce(m, source); err != nil {
				logger.Error("step failed", "step", m.Step(), "error", err)
				return
			}
			if steps > 0 && m.Step() >= uint64(steps) {
				logger.Info("simulation finished", "step", m.Step())
				return
			}
		}
	}
}

// stepOnce performs one update-dispatch cycle.
func stepOnce(m *actuator.Manager, source policy.Source) error {
	continuous, discrete := source.Actions(m.ActionSpec())
	if err := m.UpdateActions(continuous, discrete); err != nil {
		return err
	}
	return m.ExecuteActions()
}
