package day

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar days (ISO 8601 date).
const Layout = "2006-01-02"

// Day identifies one calendar day. The zero value is not a valid day.
type Day struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Date  int        `json:"date"`
}

// Parse parses a day in YYYY-MM-DD form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return FromTime(t), nil
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Date: d}
}

// Of builds a day from its components without validation.
func Of(year int, month time.Month, date int) Day {
	return Day{Year: year, Month: month, Date: date}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Date)
}

// IsZero reports whether d is the zero value.
func (d Day) IsZero() bool {
	return d == Day{}
}

// DaysIn returns the number of calendar days in the given month,
// accounting for leap years.
func DaysIn(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
