// Package svector provides a fixed-capacity vector with a pluggable storage strategy.
//
// A Vector holds up to Cap() elements in a buffer allocated once at
// construction. It never reallocates: pointers returned by Ref stay valid for
// the lifetime of the vector.
//
// # Storage Strategies
//
//   - ValueStorage: a plain []T of zero values. Works for every element type
//     and can wrap a caller-declared array (see FromArray).
//   - RawStorage: a 64-byte aligned byte buffer reinterpreted as []T. Only
//     pointer-free element types are accepted, and the raw memory image of the
//     vector is available through RawStorage.Bytes.
//
// The strategy is a type parameter, so the algorithm core is monomorphized
// and no interface dispatch happens on element access.
//
// # Boundary Behavior
//
//   - Push on a full vector is silently dropped (see WithOverflowPolicy and TryPush).
//   - Resize beyond capacity is silently ignored.
//   - Out-of-range indices and pointers outside the live range panic with
//     *ErrIndexOutOfRange and *ErrForeignPointer. Building with the
//     utl_unchecked tag removes these checks; the Go runtime still bounds
//     accesses to the backing buffer.
//
// # Example
//
//	v, _ := svector.Make[int](5)
//	for i := 1; i <= 6; i++ {
//	    v.Push(i) // the 6th push is dropped
//	}
//	fmt.Println(v) // [1 2 3 4 5]
package svector
