package service

import "time"

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
