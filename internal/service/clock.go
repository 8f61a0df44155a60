package service

import "time"

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}
