package persistence

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// snapEncMode is the CBOR encoder mode for snapshots.
// Configured for deterministic encoding with integer keys.
var snapEncMode cbor.EncMode

// snapDecMode is the CBOR decoder mode for snapshots.
var snapDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes a snapshot to CBOR bytes using integer keys for
// compactness.
func EncodeSnapshot(snapshot *Snapshot) ([]byte, error) {
	return snapEncMode.Marshal(snapshot)
}

// DecodeSnapshot decodes CBOR bytes into a snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	snapshot := &Snapshot{}
	if err := snapDecMode.Unmarshal(data, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}
