package v1

import "time"

// SetClock pins the reporting clock and returns a function restoring it.
func SetClock(now time.Time) func() {
	previous := timeNow
	timeNow = func() time.Time { return now }

	return func() { timeNow = previous }
}
