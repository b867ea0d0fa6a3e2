package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naive ISO-8601 timestamps without zone are treated as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp принимает время с часовым поясом и без него.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON разбирает строку времени или null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}

// MarshalJSON пишет RFC 3339 или null для нулевого значения.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Display форматирует время для страниц консоли.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return "—"
	}
	return t.Time.Format("2006-01-02 15:04")
}
