package model

import (
	"encoding/json"
	"testing"
)

func TestTimestampUnmarshalLenient(t *testing.T) {
	cases := []struct {
		in       string
		wantZero bool
	}{
		{`"2024-01-02T15:04:05.123456"`, false}, // python isoformat, no zone
		{`"2024-01-02T15:04:05Z"`, false},
		{`"2024-01-02"`, false},
		{`"not a date"`, true},
		{`""`, true},
		{`null`, true},
	}
	for _, c := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(c.in), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if ts.IsZero() != c.wantZero {
			t.Errorf("unmarshal %s: IsZero=%v, want %v", c.in, ts.IsZero(), c.wantZero)
		}
	}
}

func TestNoteDecodeSurvivesBadTimestamp(t *testing.T) {
	// A malformed created_at on one entity must not fail the whole list.
	payload := `[{"id":1,"content":"ok","project_tag":"#inbox","created_at":"garbage"},
	             {"id":2,"content":"fine","project_tag":"#work","created_at":"2024-05-01T10:00:00"}]`
	var notes []Note
	if err := json.Unmarshal([]byte(payload), &notes); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if !notes[0].CreatedAt.IsZero() {
		t.Errorf("expected zero timestamp for malformed created_at")
	}
	if notes[1].CreatedAt.IsZero() {
		t.Errorf("expected parsed timestamp for valid created_at")
	}
}
