//go:build !linux && !darwin && !freebsd

package timing

// CPUClock is WallClock on platforms without a process CPU-time clock.
var CPUClock = WallClock
