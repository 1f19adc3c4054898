package actuation_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stepsim/actuation-go/internal/testharness/loader"
	"github.com/stepsim/actuation-go/internal/testharness/runner"
	"github.com/stepsim/actuation-go/pkg/actuator"
	"github.com/stepsim/actuation-go/pkg/examples"
	"github.com/stepsim/actuation-go/pkg/log"
	"github.com/stepsim/actuation-go/pkg/persistence"
	"github.com/stepsim/actuation-go/pkg/policy"
)

// TestE2E_Scenarios runs every YAML scenario in the harness testdata
// directory through the scenario runner.
func TestE2E_Scenarios(t *testing.T) {
	scenarios, err := loader.LoadDirectory(filepath.Join("internal", "testharness", "testdata"))
	if err != nil {
		t.Fatalf("Failed to load scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("No scenarios found")
	}

	for _, sc := range scenarios {
		t.Run(sc.ID, func(t *testing.T) {
			result, err := runner.Run(sc, nil)
			if err != nil {
				t.Fatalf("Scenario failed: %v", err)
			}
			if result.Steps != len(sc.Steps) {
				t.Errorf("Executed %d steps, want %d", result.Steps, len(sc.Steps))
			}
		})
	}
}

// TestE2E_TraceRoundTrip runs a mixed rig with a file trace and reads the
// trace back, verifying the recorded step events.
func TestE2E_TraceRoundTrip(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "steps.cbor")

	fileLogger, err := log.NewFileLogger(tracePath)
	if err != nil {
		t.Fatalf("Failed to create file logger: %v", err)
	}

	m := actuator.NewManager()
	m.SetLogger(fileLogger)
	m.Add(examples.NewMotor("arm", 2), examples.NewSelector("turret", 3))
	m.SortByName()
	m.EnsureBufferSize()

	source := policy.NewRandomSource(42)
	const steps = 3
	for i := 0; i < steps; i++ {
		continuous, discrete := source.Actions(m.ActionSpec())
		if err := m.UpdateActions(continuous, discrete); err != nil {
			t.Fatalf("UpdateActions failed: %v", err)
		}
		if err := m.ExecuteActions(); err != nil {
			t.Fatalf("ExecuteActions failed: %v", err)
		}
	}

	if err := fileLogger.Close(); err != nil {
		t.Fatalf("Failed to close trace: %v", err)
	}

	// Read everything back and count per category.
	reader, err := log.NewReader(tracePath)
	if err != nil {
		t.Fatalf("Failed to open trace: %v", err)
	}
	defer reader.Close()

	counts := make(map[log.Category]int)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Failed to read event: %v", err)
		}
		if event.SessionID != m.SessionID() {
			t.Errorf("Event session = %s, want %s", event.SessionID, m.SessionID())
		}
		counts[event.Category]++
	}

	if counts[log.CategorySizing] != 1 {
		t.Errorf("Sizing events = %d, want 1", counts[log.CategorySizing])
	}
	if counts[log.CategoryUpdate] != steps {
		t.Errorf("Update events = %d, want %d", counts[log.CategoryUpdate], steps)
	}
	if counts[log.CategoryDispatch] != steps {
		t.Errorf("Dispatch events = %d, want %d", counts[log.CategoryDispatch], steps)
	}

	// Filtered read: only the dispatch events of this session.
	dispatch := log.CategoryDispatch
	filtered, err := log.NewFilteredReader(tracePath, log.Filter{
		SessionID: m.SessionID(),
		Category:  &dispatch,
	})
	if err != nil {
		t.Fatalf("Failed to open filtered trace: %v", err)
	}
	defer filtered.Close()

	dispatches := 0
	for {
		event, err := filtered.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Failed to read filtered event: %v", err)
		}
		if len(event.Dispatch.Deliveries) != 2 {
			t.Errorf("Deliveries = %d, want 2", len(event.Dispatch.Deliveries))
		}
		dispatches++
	}
	if dispatches != steps {
		t.Errorf("Filtered dispatch events = %d, want %d", dispatches, steps)
	}
}

// TestE2E_SnapshotRestore saves a snapshot mid-run and restores the buffer
// contents into a fresh manager with the same rig.
func TestE2E_SnapshotRestore(t *testing.T) {
	snapshotPath := filepath.Join(t.TempDir(), "state", "actuation.json")

	m := actuator.NewManager()
	m.Add(examples.NewMotor("arm", 2), examples.NewGripper("claw"))
	m.EnsureBufferSize()

	if err := m.UpdateActions([]float32{0.25, -0.5, 0.75}, []int32{2}); err != nil {
		t.Fatalf("UpdateActions failed: %v", err)
	}
	if err := m.ExecuteActions(); err != nil {
		t.Fatalf("ExecuteActions failed: %v", err)
	}

	store := persistence.NewSnapshotStore(snapshotPath)
	if err := store.Save(persistence.Capture(m)); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}
	if snapshot == nil {
		t.Fatal("Snapshot missing after save")
	}

	if snapshot.SessionID != m.SessionID() {
		t.Errorf("Snapshot session = %s, want %s", snapshot.SessionID, m.SessionID())
	}
	if snapshot.Step != 1 {
		t.Errorf("Snapshot step = %d, want 1", snapshot.Step)
	}
	if len(snapshot.Layout) != 2 {
		t.Fatalf("Snapshot layout entries = %d, want 2", len(snapshot.Layout))
	}

	// Restore into a fresh manager with the same rig.
	restored := actuator.NewManager()
	arm := examples.NewMotor("arm", 2)
	claw := examples.NewGripper("claw")
	restored.Add(arm, claw)
	restored.EnsureBufferSize()

	if err := restored.UpdateActions(snapshot.Continuous, snapshot.Discrete); err != nil {
		t.Fatalf("Failed to restore buffers: %v", err)
	}
	if err := restored.ExecuteActions(); err != nil {
		t.Fatalf("ExecuteActions after restore failed: %v", err)
	}

	if command := arm.Command(); command[0] != 0.25 || command[1] != -0.5 {
		t.Errorf("Restored arm command = %v, want [0.25 -0.5]", command)
	}
	if arm.Steps() != 1 {
		t.Errorf("Restored arm steps = %d, want 1", arm.Steps())
	}
	if claw.Force() != 0.75 {
		t.Errorf("Restored claw force = %v, want 0.75", claw.Force())
	}
	if claw.Mode() != examples.GripperModeClose {
		t.Errorf("Restored claw mode = %v, want CLOSE", claw.Mode())
	}
}
