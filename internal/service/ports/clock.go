package ports

import "time"

// Clock supplies "now" in the fixed civil timezone. All due-time decisions go
// through it so tests can pin the minute.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}
