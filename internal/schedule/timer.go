package schedule

import "time"

// Timer is a pending one-shot fire.
type Timer interface {
	Stop() bool
}

// AfterFunc arms a one-shot timer that calls f once d has elapsed.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
