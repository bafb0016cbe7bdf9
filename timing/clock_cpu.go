//go:build linux || darwin || freebsd

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUClock reads the CPU time consumed by the whole process. It falls back
// to WallClock if the kernel refuses the clock.
var CPUClock Clock = ClockFunc(func() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return WallClock.Now()
	}
	return time.Duration(ts.Nano())
})
