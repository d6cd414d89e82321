package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a wrapper around time.Duration that parses the formats the
// deployment environment actually uses: Go duration strings ("24h", "30m")
// and a day suffix ("7d") inherited from the JWT_EXPIRES_IN convention.
type Duration time.Duration

// ParseLifetime converts a lifetime string into a time.Duration. A trailing
// "d" is interpreted as whole days; everything else is delegated to
// time.ParseDuration.
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q: %w", s, err)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	return time.ParseDuration(s)
}

// UnmarshalText implements encoding.TextUnmarshaler so that caarlos0/env can
// populate Duration fields directly from environment variables.
func (d *Duration) UnmarshalText(b []byte) error {
	parsed, err := ParseLifetime(string(b))
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// UnmarshalJSON accepts either a number of nanoseconds or a lifetime string
// ("7d", "30s") in JSON config files.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := ParseLifetime(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

// MarshalJSON serializes the duration in Go's canonical string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the wrapped value as a plain time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
