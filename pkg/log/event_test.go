package log

import (
	"testing"
	"time"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategorySizing, "SIZING"},
		{CategoryUpdate, "UPDATE"},
		{CategoryDispatch, "DISPATCH"},
		{CategoryReset, "RESET"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %s, want %s", tt.c, got, tt.want)
		}
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "session-123",
		Step:      42,
		Category:  CategoryDispatch,
		Dispatch: &DispatchEvent{
			Deliveries: []Delivery{
				{Actuator: "arm", ContinuousOffset: 0, ContinuousLen: 2},
				{Actuator: "turret", DiscreteOffset: 0, DiscreteLen: 3},
			},
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.SessionID != "session-123" {
		t.Errorf("expected session-123, got %s", decoded.SessionID)
	}
	if decoded.Step != 42 {
		t.Errorf("expected step 42, got %d", decoded.Step)
	}
	if decoded.Category != CategoryDispatch {
		t.Errorf("expected DISPATCH, got %v", decoded.Category)
	}
	if decoded.Dispatch == nil {
		t.Fatal("dispatch payload should not be nil")
	}
	if len(decoded.Dispatch.Deliveries) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(decoded.Dispatch.Deliveries))
	}
	if decoded.Dispatch.Deliveries[0].Actuator != "arm" {
		t.Errorf("expected actuator arm, got %s", decoded.Dispatch.Deliveries[0].Actuator)
	}
	if decoded.Dispatch.Deliveries[1].DiscreteLen != 3 {
		t.Errorf("expected discrete length 3, got %d", decoded.Dispatch.Deliveries[1].DiscreteLen)
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp mismatch: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestEncodeDecodeErrorEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "session-err",
		Category:  CategoryError,
		Error: &ErrorEventData{
			Op:      "UpdateActions",
			Message: "size mismatch",
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Error == nil {
		t.Fatal("error payload should not be nil")
	}
	if decoded.Error.Op != "UpdateActions" {
		t.Errorf("expected op UpdateActions, got %s", decoded.Error.Op)
	}
	if decoded.Error.Message != "size mismatch" {
		t.Errorf("expected message 'size mismatch', got %s", decoded.Error.Message)
	}
}
