package timing

import "time"

// Clock reports a monotonically increasing time reading.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration { return f() }

var wallEpoch = time.Now()

// WallClock reads the monotonic wall clock.
var WallClock Clock = ClockFunc(func() time.Duration {
	return time.Since(wallEpoch)
})
