package clock

import "time"

// Clock yields wall-clock time in one fixed civil timezone, never the host
// zone. The booking rooms live in UTC+5 regardless of where the process runs.
type Clock struct {
	loc *time.Location
}

func New(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
