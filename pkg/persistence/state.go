package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/stepsim/actuation-go/pkg/actuator"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// Snapshot captures a manager's layout and buffer contents at one point in
// a session.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version" cbor:"1,keyasint"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at" cbor:"2,keyasint"`

	// SessionID identifies the aggregator session the snapshot came from.
	SessionID string `json:"session_id,omitempty" cbor:"3,keyasint,omitempty"`

	// Step is the number of completed dispatch passes at capture time.
	Step uint64 `json:"step,omitempty" cbor:"4,keyasint,omitempty"`

	// Generation is the layout generation at capture time. A snapshot is
	// only comparable to a live manager at the same generation.
	Generation uint64 `json:"generation,omitempty" cbor:"5,keyasint,omitempty"`

	// Layout maps each actuator to its buffer offset ranges.
	Layout []LayoutRecord `json:"layout,omitempty" cbor:"6,keyasint,omitempty"`

	// Continuous is the stored continuous buffer.
	Continuous []float32 `json:"continuous,omitempty" cbor:"7,keyasint,omitempty"`

	// Discrete is the stored discrete buffer.
	Discrete []int32 `json:"discrete,omitempty" cbor:"8,keyasint,omitempty"`
}

// LayoutRecord mirrors actuator.LayoutEntry for serialization.
type LayoutRecord struct {
	Name             string `json:"name" cbor:"1,keyasint"`
	ContinuousOffset int    `json:"continuous_offset" cbor:"2,keyasint"`
	ContinuousLen    int    `json:"continuous_len" cbor:"3,keyasint"`
	DiscreteOffset   int    `json:"discrete_offset" cbor:"4,keyasint"`
	DiscreteLen      int    `json:"discrete_len" cbor:"5,keyasint"`
}

// Capture takes a snapshot of the manager's current layout and buffers.
func Capture(m *actuator.Manager) *Snapshot {
	layout := m.Layout()
	records := make([]LayoutRecord, 0, len(layout))
	for _, entry := range layout {
		records = append(records, LayoutRecord{
			Name:             entry.Name,
			ContinuousOffset: entry.Continuous.Offset,
			ContinuousLen:    entry.Continuous.Length,
			DiscreteOffset:   entry.Discrete.Offset,
			DiscreteLen:      entry.Discrete.Length,
		})
	}

	return &Snapshot{
		Version:    SnapshotVersion,
		SavedAt:    time.Now(),
		SessionID:  m.SessionID(),
		Step:       m.Step(),
		Generation: m.Generation(),
		Layout:     records,
		Continuous: m.ContinuousActions(),
		Discrete:   m.DiscreteActions(),
	}
}

// SnapshotStore manages persistence of snapshots to a JSON file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save persists the snapshot to disk.
func (s *SnapshotStore) Save(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snapshot.Version = SnapshotVersion
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist (no snapshot).
func (s *SnapshotStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
