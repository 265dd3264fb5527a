package model

import (
	"fmt"
	"time"

	errspkg "github.com/fluxrelay/eventframe/internal/errors"
)

// TimestampFormat is the canonical wire format for every timestamp this
// module owns: ISO-8601 with millisecond precision, e.g.
// "2024-01-15T10:30:00.000Z".
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time carried by event and trace metadata. The
// zero Timestamp means "not set". Values always serialize in UTC using
// TimestampFormat.
type Timestamp struct {
	t time.Time
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return Timestamp{t: time.Now().UTC()}
}

// NewTimestamp wraps an existing time value.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{t: t.UTC()}
}

// ParseTimestamp parses a timestamp string. The canonical format is tried
// first, then RFC3339Nano/RFC3339 and a few common lenient layouts.
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(TimestampFormat, s); err == nil {
		return NewTimestamp(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewTimestamp(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewTimestamp(t), nil
	}

	lenient := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range lenient {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q", errspkg.ErrInvalidTimestamp, s)
}

// Time returns the underlying time value in UTC.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the timestamp is unset.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Equal reports whether two timestamps describe the same instant.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// String renders the canonical wire form, or "" for the zero Timestamp.
func (ts Timestamp) String() string {
	if ts.t.IsZero() {
		return ""
	}
	return ts.t.UTC().Format(TimestampFormat)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", errspkg.ErrInvalidTimestamp, data)
	}
	s := string(data[1 : len(data)-1])
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
