package v1

import "time"

// timeNow is replaced in tests to pin the reporting clock.
var timeNow = func() time.Time {
	return time.Now().In(time.UTC)
}
