// Package imath provides small integer math helpers.
package imath

// Integer is the set of integer types accepted by the helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Uceil returns dividend/divisor rounded up. A zero divisor yields 0.
func Uceil[T Unsigned](dividend, divisor T) T {
	if divisor == 0 {
		return 0
	}
	return (dividend + (divisor - 1)) / divisor
}

// Imap linearly maps val from [inMin, inMax] to [outMin, outMax]. The result
// is computed in float64 and truncated toward zero. An empty input range
// maps everything to outMin.
func Imap[T Integer](val, inMin, inMax, outMin, outMax T) T {
	if inMax == inMin {
		return outMin
	}
	slope := (float64(outMax) - float64(outMin)) / (float64(inMax) - float64(inMin))
	return T(float64(outMin) + slope*(float64(val)-float64(inMin)))
}

// Ipow returns base**exp by square-and-multiply. Non-positive exponents yield 1.
// Overflow wraps like ordinary integer multiplication.
func Ipow[T Integer](base, exp T) T {
	res := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}
	return res
}

// Ilen returns the number of decimal digits of val, ignoring the sign.
// Ilen(0) is 1.
func Ilen[T Integer](val T) int {
	if val == 0 {
		return 1
	}
	n := 0
	for val != 0 {
		n++
		val /= 10
	}
	return n
}

// Fact returns x!. Values below 2 yield 1.
func Fact[T Integer](x T) T {
	res := T(1)
	for ; x > 1; x-- {
		res *= x
	}
	return res
}
