// Package interactive provides the interactive command-line interface
// for the actuation simulator.
package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/stepsim/actuation-go/pkg/actuator"
	"github.com/stepsim/actuation-go/pkg/persistence"
	"github.com/stepsim/actuation-go/pkg/policy"
)

// Console handles interactive mode for actuation-sim.
type Console struct {
	m      *actuator.Manager
	source policy.Source
	store  *persistence.SnapshotStore
	rl     *readline.Instance
}

// New creates a new interactive console around the given manager.
// The snapshot store may be nil when snapshots are not configured.
func New(m *actuator.Manager, source policy.Source, store *persistence.SnapshotStore) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sim> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		m:      m,
		source: source,
		store:  store,
		rl:     rl,
	}, nil
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "step", "s":
			c.cmdStep(args)

		case "update", "u":
			c.cmdUpdate(args)

		case "flat", "f":
			c.cmdFlat(args)

		case "execute", "x":
			c.cmdExecute()

		case "status":
			c.cmdStatus()

		case "layout", "l":
			c.cmdLayout()

		case "buffers", "b":
			c.cmdBuffers()

		case "sort":
			c.cmdSort()

		case "size":
			c.m.EnsureBufferSize()
			fmt.Fprintln(c.rl.Stdout(), "Buffers resized")

		case "reset":
			c.m.ResetData()
			fmt.Fprintln(c.rl.Stdout(), "Buffers and actuators reset")

		case "snapshot", "snap":
			c.cmdSnapshot()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Actuation Simulator Commands:
  Stepping:
    step [n]             - Run n policy-driven steps (default 1)
    update <floats...>   - Store a continuous buffer (clears discrete)
    flat <floats...>     - Store via the legacy flat bridge
    execute              - Dispatch the stored buffers

  Inspection:
    status               - Show session, step and generation counters
    layout               - Show per-actuator buffer offsets
    buffers              - Show the stored buffer contents

  Layout:
    sort                 - Sort the rig by actuator name
    size                 - Recompute and reallocate the buffers
    reset                - Zero the buffers and reset every actuator

  General:
    snapshot             - Save a state snapshot (needs -snapshot)
    help                 - Show this help
    quit                 - Exit`)
}

// cmdStep runs one or more full policy-driven step cycles.
func (c *Console) cmdStep(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Fprintf(c.rl.Stdout(), "Invalid step count: %s\n", args[0])
			return
		}
		n = v
	}

	for i := 0; i < n; i++ {
		continuous, discrete := c.source.Actions(c.m.ActionSpec())
		if err := c.m.UpdateActions(continuous, discrete); err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Update failed: %v\n", err)
			return
		}
		if err := c.m.ExecuteActions(); err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Dispatch failed: %v\n", err)
			return
		}
	}
	fmt.Fprintf(c.rl.Stdout(), "Step %d\n", c.m.Step())
}

// cmdUpdate stores a continuous buffer typed on the command line.
func (c *Console) cmdUpdate(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: update <floats...>")
		return
	}

	continuous, err := parseFloats(args)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid value: %v\n", err)
		return
	}

	if err := c.m.UpdateActions(continuous, nil); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Update failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

// cmdFlat stores an undifferentiated buffer via the legacy bridge.
func (c *Console) cmdFlat(args []string) {
	values, err := parseFloats(args)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid value: %v\n", err)
		return
	}

	if err := policy.ApplyFlat(c.m, values); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Flat update failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

// cmdExecute dispatches the stored buffers without drawing new actions.
func (c *Console) cmdExecute() {
	if err := c.m.ExecuteActions(); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Dispatch failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Dispatched step %d\n", c.m.Step())
}

// cmdStatus shows the manager counters.
func (c *Console) cmdStatus() {
	spec := c.m.ActionSpec()

	fmt.Fprintln(c.rl.Stdout(), "\nSimulator Status")
	fmt.Fprintln(c.rl.Stdout(), "-------------------------------------------")
	fmt.Fprintf(c.rl.Stdout(), "  Session:    %s\n", c.m.SessionID())
	fmt.Fprintf(c.rl.Stdout(), "  Step:       %d\n", c.m.Step())
	fmt.Fprintf(c.rl.Stdout(), "  Generation: %d\n", c.m.Generation())
	fmt.Fprintf(c.rl.Stdout(), "  Actuators:  %d\n", c.m.Len())
	fmt.Fprintf(c.rl.Stdout(), "  Spec:       %d continuous / %d discrete\n", spec.Continuous, spec.Discrete)
	fmt.Fprintf(c.rl.Stdout(), "  Buffers:    %d continuous / %d discrete\n", c.m.ContinuousSize(), c.m.DiscreteSize())
	fmt.Fprintln(c.rl.Stdout())
}

// cmdLayout shows the per-actuator buffer ranges.
func (c *Console) cmdLayout() {
	layout := c.m.Layout()
	if len(layout) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "Empty rig")
		return
	}

	fmt.Fprintln(c.rl.Stdout(), "\nBuffer Layout")
	fmt.Fprintln(c.rl.Stdout(), "-------------------------------------------")
	for _, entry := range layout {
		fmt.Fprintf(c.rl.Stdout(), "  %-12s continuous [%d,%d)  discrete [%d,%d)\n",
			entry.Name,
			entry.Continuous.Offset, entry.Continuous.End(),
			entry.Discrete.Offset, entry.Discrete.End(),
		)
	}
	fmt.Fprintln(c.rl.Stdout())
}

// cmdBuffers shows the stored buffer contents.
func (c *Console) cmdBuffers() {
	fmt.Fprintf(c.rl.Stdout(), "continuous: %v\n", c.m.ContinuousActions())
	fmt.Fprintf(c.rl.Stdout(), "discrete:   %v\n", c.m.DiscreteActions())
}

// cmdSort sorts the rig and reminds about resizing.
func (c *Console) cmdSort() {
	c.m.SortByName()
	fmt.Fprintln(c.rl.Stdout(), "Sorted by name; run 'size' before the next update")
}

// cmdSnapshot saves the current state through the snapshot store.
func (c *Console) cmdSnapshot() {
	if c.store == nil {
		fmt.Fprintln(c.rl.Stdout(), "No snapshot path configured (use -snapshot)")
		return
	}

	if err := c.store.Save(persistence.Capture(c.m)); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Snapshot failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Snapshot saved at step %d\n", c.m.Step())
}

func parseFloats(args []string) ([]float32, error) {
	values := make([]float32, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", arg)
		}
		values = append(values, float32(v))
	}
	return values, nil
}
