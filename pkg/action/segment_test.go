package action

import (
	"errors"
	"testing"
)

func TestNewSegment(t *testing.T) {
	buffer := []float32{1, 2, 3, 4, 5}

	t.Run("ValidRange", func(t *testing.T) {
		seg, err := NewSegment(buffer, 1, 3, 7)
		if err != nil {
			t.Fatalf("NewSegment failed: %v", err)
		}
		if seg.Len() != 3 {
			t.Errorf("expected length 3, got %d", seg.Len())
		}
		if seg.Offset() != 1 {
			t.Errorf("expected offset 1, got %d", seg.Offset())
		}
		if seg.Generation() != 7 {
			t.Errorf("expected generation 7, got %d", seg.Generation())
		}
	})

	t.Run("EmptyRange", func(t *testing.T) {
		seg, err := NewSegment(buffer, 5, 0, 0)
		if err != nil {
			t.Fatalf("NewSegment failed: %v", err)
		}
		if seg.Len() != 0 {
			t.Errorf("expected empty segment, got length %d", seg.Len())
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		tests := []struct {
			name           string
			offset, length int
		}{
			{"past end", 3, 3},
			{"negative offset", -1, 2},
			{"negative length", 2, -1},
			{"offset past end", 6, 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewSegment(buffer, tt.offset, tt.length, 0)
				if !errors.Is(err, ErrSegmentOutOfRange) {
					t.Errorf("expected ErrSegmentOutOfRange, got %v", err)
				}
			})
		}
	})
}

func TestSegmentAccess(t *testing.T) {
	buffer := []int32{10, 20, 30, 40}
	seg, err := NewSegment(buffer, 1, 2, 0)
	if err != nil {
		t.Fatalf("NewSegment failed: %v", err)
	}

	t.Run("Get", func(t *testing.T) {
		if got := seg.Get(0); got != 20 {
			t.Errorf("Get(0) = %d, want 20", got)
		}
		if got := seg.Get(1); got != 30 {
			t.Errorf("Get(1) = %d, want 30", got)
		}
	})

	t.Run("GetOutOfRangePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for out-of-range index")
			}
		}()
		seg.Get(2)
	})

	t.Run("Values", func(t *testing.T) {
		values := seg.Values()
		if len(values) != 2 || values[0] != 20 || values[1] != 30 {
			t.Errorf("Values() = %v, want [20 30]", values)
		}
	})

	t.Run("ValuesSeesBufferUpdates", func(t *testing.T) {
		// Segments are views, not copies.
		buffer[1] = 99
		if got := seg.Get(0); got != 99 {
			t.Errorf("Get(0) after buffer write = %d, want 99", got)
		}
		buffer[1] = 20
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		clone := seg.Clone()
		buffer[1] = 77
		if clone[0] != 20 {
			t.Errorf("clone[0] = %d, want 20 (unaffected by buffer write)", clone[0])
		}
		buffer[1] = 20
	})
}

func TestSpecCombine(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  Spec
	}{
		{"none", nil, Spec{}},
		{"single", []Spec{{Continuous: 2, Discrete: 1}}, Spec{Continuous: 2, Discrete: 1}},
		{"mixed", []Spec{{Continuous: 2}, {Discrete: 3}, {Continuous: 1}}, Spec{Continuous: 3, Discrete: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.specs...); got != tt.want {
				t.Errorf("Combine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpecHelpers(t *testing.T) {
	s := Spec{Continuous: 2, Discrete: 3}
	if s.Total() != 5 {
		t.Errorf("Total() = %d, want 5", s.Total())
	}
	if s.Empty() {
		t.Error("Empty() = true for non-empty spec")
	}
	if !(Spec{}).Empty() {
		t.Error("Empty() = false for zero spec")
	}
}
