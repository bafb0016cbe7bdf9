package mem

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/utl/internal/conv"
)

// Alignment is the byte alignment of buffers returned by AllocAligned (one cache line, AVX-512 friendly).
const Alignment = 64

// MaxAlloc is the largest size CheckAlloc accepts, padding included.
const MaxAlloc = 1<<(30+(^uint(0)>>63)*17) - 1

// CheckAlloc reports whether AllocAligned(size) can be satisfied without
// overflowing the padded length or exceeding MaxAlloc.
func CheckAlloc(size int) error {
	total, err := conv.AddInt(size, Alignment)
	if err != nil {
		return err
	}
	if total > MaxAlloc {
		return fmt.Errorf("mem: allocation of %d bytes exceeds limit %d", total, MaxAlloc)
	}
	return nil
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice. Callers sizing
// buffers from untrusted input validate size with CheckAlloc first.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// View reinterprets the first n*sizeof(T) bytes of b as a []T.
//
// b must be at least n*sizeof(T) bytes long and aligned for T, and T must
// not contain pointers (see HasPointers). View panics if b is too short or
// misaligned for T.
func View[T any](b []byte, n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n == 0 {
		return []T{}
	}
	if size == 0 {
		return make([]T, n)
	}
	if len(b) < n*size {
		panic("mem: buffer too short for view")
	}
	ptr := unsafe.Pointer(unsafe.SliceData(b)) //nolint:gosec // reinterpretation of pointer-free memory
	if uintptr(ptr)%uintptr(AlignOf[T]()) != 0 {
		panic("mem: misaligned buffer for view")
	}
	return unsafe.Slice((*T)(ptr), n) //nolint:gosec // reinterpretation of pointer-free memory
}

// Bytes returns the memory image of s as a byte slice sharing the same backing array.
func Bytes[T any](s []T) []byte {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(s) == 0 || size == 0 {
		return nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(s))      //nolint:gosec // byte view of pointer-free memory
	return unsafe.Slice((*byte)(ptr), len(s)*size) //nolint:gosec // byte view of pointer-free memory
}

// SizeOf returns sizeof(T) in bytes.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AlignOf returns the required alignment of T in bytes.
func AlignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// HasPointers reports whether values of type t contain pointers the
// garbage collector must trace.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func, Interface.
		return true
	}
}
