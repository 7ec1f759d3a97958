package clock

import "time"

// Clock supplies the reference "today" used for status classification.
// Injected so reconciliation results are deterministic under test and so
// operations can replay a past receiving day.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock, truncated to midnight UTC.
type SystemClock struct{}

func (SystemClock) Today() time.Time {
	return Midnight(time.Now().UTC())
}

// FixedClock always reports the same day. Used in tests and when the
// REFERENCE_DATE config override is set.
type FixedClock struct {
	Day time.Time
}

func (c FixedClock) Today() time.Time {
	return Midnight(c.Day)
}

// Midnight normalizes a timestamp to 00:00:00 UTC of its calendar day.
// Day-difference arithmetic assumes both operands went through this.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
