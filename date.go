package cel

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date without a time component, normalized to
// midnight UTC.
type Date struct {
	defaultConversion[Date]
	Value time.Time
}

// NewDate truncates a time to its calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Value: t}, nil
}

func (d Date) Type() Type { return TypeDate }
func (d Date) Equal(other Value) bool {
	o, ok := other.(Date)
	return ok && d.Value.Equal(o.Value)
}
func (d Date) ToDate() (Date, error) { return d, nil }
func (d Date) ToJSON() (any, error)  { return d.Value.Format(time.DateOnly), nil }
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value.Format(time.DateOnly))
}
func (d Date) String() string { return d.Value.Format(time.DateOnly) }
