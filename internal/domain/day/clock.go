package day

import "time"

// Clock resolves "today" from wall-clock time in a configured timezone.
// Which day is live is always derived at call time, never stored.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock creates a clock for the given location.
func NewClock(loc *time.Location) *Clock {
	return &Clock{loc: loc, now: time.Now}
}

// NewClockAt creates a clock with an injected time source, for tests.
func NewClockAt(loc *time.Location, now func() time.Time) *Clock {
	return &Clock{loc: loc, now: now}
}

// Now returns the current instant in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current calendar day in the clock's location.
func (c *Clock) Today() Day {
	return FromTime(c.Now())
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}
