package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration reads either a Go duration string ("10s") or a number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(value * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parsing duration %q: %s", value, err)
		}
		*d = Duration(parsed)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
