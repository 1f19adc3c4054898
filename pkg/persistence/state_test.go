package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stepsim/actuation-go/pkg/action"
	"github.com/stepsim/actuation-go/pkg/actuator"
)

// stubActuator declares slot counts and ignores deliveries.
type stubActuator struct {
	name       string
	continuous int
	discrete   int
}

func (s *stubActuator) Name() string         { return s.name }
func (s *stubActuator) ContinuousSlots() int { return s.continuous }
func (s *stubActuator) DiscreteSlots() int   { return s.discrete }
func (s *stubActuator) OnActionReceived(action.Segment[float32], action.Segment[int32]) {}
func (s *stubActuator) Reset()               {}

func testManager(t *testing.T) *actuator.Manager {
	t.Helper()
	m := actuator.NewManager()
	m.Add(&stubActuator{name: "arm", continuous: 2}, &stubActuator{name: "turret", discrete: 3})
	m.EnsureBufferSize()
	if err := m.UpdateActions([]float32{1.5, -2.5}, []int32{1, 0, 2}); err != nil {
		t.Fatalf("UpdateActions failed: %v", err)
	}
	return m
}

func TestCapture(t *testing.T) {
	m := testManager(t)
	snapshot := Capture(m)

	if snapshot.Version != SnapshotVersion {
		t.Errorf("version = %d, want %d", snapshot.Version, SnapshotVersion)
	}
	if snapshot.SessionID != m.SessionID() {
		t.Errorf("session = %s, want %s", snapshot.SessionID, m.SessionID())
	}
	if snapshot.Generation != m.Generation() {
		t.Errorf("generation = %d, want %d", snapshot.Generation, m.Generation())
	}
	if len(snapshot.Layout) != 2 {
		t.Fatalf("expected 2 layout records, got %d", len(snapshot.Layout))
	}
	if snapshot.Layout[0].Name != "arm" || snapshot.Layout[0].ContinuousLen != 2 {
		t.Errorf("layout[0] = %+v", snapshot.Layout[0])
	}
	if snapshot.Layout[1].Name != "turret" || snapshot.Layout[1].DiscreteLen != 3 {
		t.Errorf("layout[1] = %+v", snapshot.Layout[1])
	}
	if len(snapshot.Continuous) != 2 || snapshot.Continuous[0] != 1.5 {
		t.Errorf("continuous = %v", snapshot.Continuous)
	}
	if len(snapshot.Discrete) != 3 || snapshot.Discrete[2] != 2 {
		t.Errorf("discrete = %v", snapshot.Discrete)
	}
}

func TestSnapshotStoreSaveLoad(t *testing.T) {
	m := testManager(t)
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "nested", "snapshot.json"))

	if err := store.Save(Capture(m)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if loaded.SessionID != m.SessionID() {
		t.Errorf("session = %s, want %s", loaded.SessionID, m.SessionID())
	}
	if len(loaded.Continuous) != 2 || loaded.Continuous[1] != -2.5 {
		t.Errorf("continuous = %v", loaded.Continuous)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("saved_at should be set")
	}
}

func TestSnapshotStoreLoadMissing(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "missing.json"))

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot != nil {
		t.Errorf("expected nil snapshot for missing file, got %+v", snapshot)
	}
}

func TestSnapshotStoreClear(t *testing.T) {
	m := testManager(t)
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.json"))

	if err := store.Save(Capture(m)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	snapshot, err := store.Load()
	if err != nil || snapshot != nil {
		t.Errorf("expected empty store after Clear, got %+v, %v", snapshot, err)
	}

	// Clearing again is fine
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear should be nil, got %v", err)
	}
}

func TestSnapshotCBORRoundTrip(t *testing.T) {
	m := testManager(t)
	snapshot := Capture(m)

	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("EncodeSnapshot failed: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}

	if decoded.SessionID != snapshot.SessionID {
		t.Errorf("session = %s, want %s", decoded.SessionID, snapshot.SessionID)
	}
	if len(decoded.Layout) != len(snapshot.Layout) {
		t.Fatalf("layout records = %d, want %d", len(decoded.Layout), len(snapshot.Layout))
	}
	if decoded.Layout[1].DiscreteLen != 3 {
		t.Errorf("layout[1] = %+v", decoded.Layout[1])
	}
	for i := range snapshot.Continuous {
		if decoded.Continuous[i] != snapshot.Continuous[i] {
			t.Errorf("continuous[%d] = %v, want %v", i, decoded.Continuous[i], snapshot.Continuous[i])
		}
	}
}
