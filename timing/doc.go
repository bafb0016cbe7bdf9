// Package timing measures how much CPU time a function takes.
//
// On Linux, macOS and FreeBSD the process CPU-time clock is used, so time
// spent by other processes is not counted. Elsewhere the monotonic wall
// clock is used.
package timing
