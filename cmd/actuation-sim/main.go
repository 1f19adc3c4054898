// Command actuation-sim is a reference actuation step-loop driver.
//
// It builds an actuator rig, aggregates per-step action buffers from a
// policy source and dispatches them through the manager, with:
//   - CLI argument parsing
//   - Configuration file support (YAML rig declarations)
//   - Simulated actuator types (motor, selector, gripper)
//   - CBOR step-trace recording
//   - State snapshots
//   - Interactive console mode
//
// Usage:
//
//	actuation-sim [flags]
//
// Flags:
//
//	-config string    Configuration file path (YAML)
//	-policy string    Action source: random, constant (default "random")
//	-seed int         Seed for the random policy (default 1)
//	-steps int        Number of steps to run, 0 = until interrupted
//	-interval dur     Delay between steps (default 1s)
//	-trace string     CBOR trace output path
//	-snapshot string  Snapshot file path, saved on shutdown
//	-sort             Sort the rig by actuator name before sizing
//	-strict           Refuse to dispatch on a stale buffer layout
//	-log-level string Log level: debug, info, warn, error (default "info")
//	-interactive      Drop into the interactive console instead of looping
//	-version          Print version and exit
//
// Examples:
//
//	# Run the default rig for 100 steps with a trace
//	actuation-sim -steps 100 -interval 100ms -trace steps.cbor
//
//	# Drive a rig declared in a config file from the console
//	actuation-sim -config rig.yaml -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stepsim/actuation-go/cmd/actuation-sim/interactive"
	"github.com/stepsim/actuation-go/pkg/actuator"
	"github.com/stepsim/actuation-go/pkg/examples"
	"github.com/stepsim/actuation-go/pkg/log"
	"github.com/stepsim/actuation-go/pkg/persistence"
	"github.com/stepsim/actuation-go/pkg/policy"
	"github.com/stepsim/actuation-go/pkg/version"
)

// RigEntry declares one actuator of the simulated rig.
type RigEntry struct {
	// Kind selects the actuator type: motor, selector, gripper.
	Kind string `yaml:"kind"`

	// Name is the actuator name (sort key).
	Name string `yaml:"name"`

	// Slots is the slot count for motors (axes) and selectors (switches).
	// Grippers have a fixed 1+1 layout and ignore it.
	Slots int `yaml:"slots,omitempty"`
}

// Config holds the simulator configuration.
type Config struct {
	ConfigFile  string
	Policy      string
	Seed        int64
	Steps       int
	Interval    time.Duration
	TracePath   string
	SnapshotDir string
	Sort        bool
	Strict      bool
	LogLevel    string
	Interactive bool

	// Rig is the actuator declaration list, loaded from the config file.
	Rig []RigEntry `yaml:"rig"`
}

var (
	config       Config
	printVersion bool
)

func init() {
	flag.BoolVar(&printVersion, "version", false, "Print version and exit")
	flag.StringVar(&config.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&config.Policy, "policy", "random", "Action source: random, constant")
	flag.Int64Var(&config.Seed, "seed", 1, "Seed for the random policy")
	flag.IntVar(&config.Steps, "steps", 0, "Number of steps to run, 0 = until interrupted")
	flag.DurationVar(&config.Interval, "interval", time.Second, "Delay between steps")
	flag.StringVar(&config.TracePath, "trace", "", "CBOR trace output path")
	flag.StringVar(&config.SnapshotDir, "snapshot", "", "Snapshot file path, saved on shutdown")
	flag.BoolVar(&config.Sort, "sort", false, "Sort the rig by actuator name before sizing")
	flag.BoolVar(&config.Strict, "strict", false, "Refuse to dispatch on a stale buffer layout")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Drop into the interactive console")
}

func main() {
	flag.Parse()

	if printVersion {
		fmt.Println("actuation-sim", version.Get())
		return
	}

	logger := setupLogging(config.LogLevel)

	if config.ConfigFile != "" {
		if err := loadConfigFile(config.ConfigFile, &config); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	}
	if len(config.Rig) == 0 {
		config.Rig = defaultRig()
	}

	m := actuator.NewManager()
	m.SetStrict(config.Strict)
	if err := buildRig(m, config.Rig); err != nil {
		logger.Error("invalid rig", "error", err)
		os.Exit(1)
	}

	// Trace goes to the console at debug level, and to the trace file
	// when one is configured.
	traceLoggers := []log.Logger{log.NewSlogAdapter(logger)}
	if config.TracePath != "" {
		fileLogger, err := log.NewFileLogger(config.TracePath)
		if err != nil {
			logger.Error("failed to open trace file", "path", config.TracePath, "error", err)
			os.Exit(1)
		}
		defer fileLogger.Close()
		traceLoggers = append(traceLoggers, fileLogger)
	}
	m.SetLogger(log.NewMultiLogger(traceLoggers...))

	if config.Sort {
		m.SortByName()
	}
	m.EnsureBufferSize()

	spec := m.ActionSpec()
	logger.Info("rig ready",
		"session_id", m.SessionID(),
		"actuators", m.Len(),
		"continuous", spec.Continuous,
		"discrete", spec.Discrete,
	)

	source, err := buildSource(config)
	if err != nil {
		logger.Error("invalid policy", "error", err)
		os.Exit(1)
	}

	var store *persistence.SnapshotStore
	if config.SnapshotDir != "" {
		store = persistence.NewSnapshotStore(config.SnapshotDir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.Interactive {
		console, err := interactive.New(m, source, store)
		if err != nil {
			logger.Error("failed to start console", "error", err)
			os.Exit(1)
		}
		console.Run(ctx, cancel)
	} else {
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info("received signal", "signal", sig.String())
			cancel()
		}()

		runSimulation(ctx, logger, m, source, config.Interval, config.Steps)
	}

	if store != nil {
		if err := store.Save(persistence.Capture(m)); err != nil {
			logger.Error("failed to save snapshot", "error", err)
			os.Exit(1)
		}
		logger.Info("snapshot saved", "path", config.SnapshotDir, "step", m.Step())
	}
}

func setupLogging(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// defaultRig is the rig used when no config file declares one: a two-axis
// motor, a three-way selector and a gripper.
func defaultRig() []RigEntry {
	return []RigEntry{
		{Kind: "motor", Name: "arm", Slots: 2},
		{Kind: "selector", Name: "turret", Slots: 3},
		{Kind: "gripper", Name: "claw"},
	}
}

func buildRig(m *actuator.Manager, rig []RigEntry) error {
	for _, entry := range rig {
		if entry.Name == "" {
			return fmt.Errorf("rig entry of kind %q has no name", entry.Kind)
		}
		switch entry.Kind {
		case "motor":
			m.Add(examples.NewMotor(entry.Name, entry.Slots))
		case "selector":
			m.Add(examples.NewSelector(entry.Name, entry.Slots))
		case "gripper":
			m.Add(examples.NewGripper(entry.Name))
		default:
			return fmt.Errorf("unknown actuator kind: %s", entry.Kind)
		}
	}
	return nil
}

func buildSource(cfg Config) (policy.Source, error) {
	switch cfg.Policy {
	case "random":
		return policy.NewRandomSource(cfg.Seed), nil
	case "constant":
		return policy.ConstantSource{Continuous: 0.5, Discrete: 1}, nil
	default:
		return nil, fmt.Errorf("unknown policy: %s", cfg.Policy)
	}
}
