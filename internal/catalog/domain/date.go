package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is an optional calendar date as sent by the backend. The zero value
// means "no expiry date".
//
// Date-only strings are read as midnight UTC, datetimes without an offset as
// local time, matching how the browser storefront parsed them.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) Date {
	return Date{t: t}
}

// ParseDate accepts YYYY-MM-DD, YYYY-MM-DDTHH:MM:SS[.ffffff] and RFC 3339.
// An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Date{t: t}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local); err == nil {
		return Date{t: t}, nil
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

// String renders the calendar day, or "" for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON writes a bare day for midnight values and RFC 3339 otherwise,
// so a decoded Date is the same instant
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	if h, m, s := d.t.Clock(); h == 0 && m == 0 && s == 0 && d.t.Nanosecond() == 0 && d.t.Location() == time.UTC {
		return json.Marshal(d.String())
	}
	return json.Marshal(d.t.Format(time.RFC3339Nano))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expiry date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
