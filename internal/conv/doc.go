// Package conv provides safe integer conversion and arithmetic utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when sizing buffers from caller-supplied counts.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
