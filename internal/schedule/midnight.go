package schedule

import "time"

// NextMidnight returns 00:00:00 of the calendar day after now, in now's
// location. Building the date from its fields keeps DST days correct.
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// UntilNextMidnight is the wait from now to NextMidnight(now).
func UntilNextMidnight(now time.Time) time.Duration {
	return NextMidnight(now).Sub(now)
}
