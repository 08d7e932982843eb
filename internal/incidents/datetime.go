package incidents

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are the accepted request date formats: RFC 3339 timestamps as
// sent by API clients, plus the date-only form produced by HTML date inputs.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is a request-side timestamp that unmarshals from any of the
// accepted date formats.
type DateTime struct {
	time.Time
}

// ParseDate parses a date string in any of the accepted formats.
func ParseDate(s string) (DateTime, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unrecognized date %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}
