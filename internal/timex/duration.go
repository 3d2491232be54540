// Package timex provides a time.Duration wrapper that decodes from JSON
// either as a Go duration string ("3s", "1m30s") or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration is a JSON-friendly time.Duration.
type Duration struct {
	time.Duration
}

// MarshalJSON encodes the duration as its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "3s" style strings and plain numbers.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}
