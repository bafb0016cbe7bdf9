package bits

import (
	mbits "math/bits"
	"unsafe"
)

// Unsigned is the set of word types ShiftLeft operates on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// BytesInBits returns the number of bytes needed to store n bits.
func BytesInBits(n int) int {
	return n>>3 + (n&7+7)>>3
}

// Bit returns a word with only bit n set.
func Bit(n uint) uint64 {
	return 1 << n
}

// GetBit returns bit n of b.
func GetBit(b byte, n int) bool {
	return (b>>n)&1 == 1
}

// SetBit sets bit n of *b.
func SetBit(b *byte, n int) {
	*b |= 1 << n
}

// ClrBit clears bit n of *b.
func ClrBit(b *byte, n int) {
	*b &^= 1 << n
}

// GetArrBit returns bit n of arr.
func GetArrBit(arr []byte, n int) bool {
	return GetBit(arr[n>>3], n&7)
}

// SetArrBit sets bit n of arr.
func SetArrBit(arr []byte, n int) {
	SetBit(&arr[n>>3], n&7)
}

// ClrArrBit clears bit n of arr.
func ClrArrBit(arr []byte, n int) {
	ClrBit(&arr[n>>3], n&7)
}

// PutArrBit sets or clears bit n of arr.
func PutArrBit(arr []byte, n int, v bool) {
	if v {
		SetArrBit(arr, n)
	} else {
		ClrArrBit(arr, n)
	}
}

// Count returns the number of set bits in arr.
func Count(arr []byte) int {
	c := 0
	for _, b := range arr {
		c += mbits.OnesCount8(b)
	}
	return c
}

// ShiftLeft shifts the multi-word integer x left by one bit. x[0] is the
// least significant word; the top bit of the last word is lost.
//
//	[]uint16{0b10000000_11100001, 0} -> []uint16{0b00000001_11000010, 1}
func ShiftLeft[T Unsigned](x []T) {
	if len(x) == 0 {
		return
	}
	var zero T
	top := int(unsafe.Sizeof(zero)) * 8
	for i := len(x) - 1; i > 0; i-- {
		x[i] = x[i]<<1 | x[i-1]>>(top-1)
	}
	x[0] <<= 1
}
