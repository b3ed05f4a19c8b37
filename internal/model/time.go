package model

import (
	"strings"
	"time"
)

// Timestamp is a lenient wrapper around time.Time for API payloads.
//
// The backend emits Python-style ISO timestamps without a zone offset
// ("2024-01-02T15:04:05.123456"); plain time.Time would reject those and a
// single bad field would fail decoding of the entire list. A value that
// cannot be parsed decodes to the zero Timestamp instead; one malformed
// entity must not blank the whole render.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// DateString renders the date part for list rows; zero values render empty.
func (t Timestamp) DateString() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
