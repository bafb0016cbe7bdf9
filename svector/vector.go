package svector

import (
	"fmt"
	"iter"
	"unsafe"
)

// Vector is a fixed-capacity sequence of up to Cap() elements of type T,
// stored in a buffer provided by the storage strategy S.
//
// The zero Vector is not usable; construct one with New, Make, MakeRaw or
// FromArray. A Vector must not be copied by value after first use; use Clone.
type Vector[T any, S Storage[T]] struct {
	store S
	buf   []T
	n     int
	opts  options
}

// New creates an empty vector over store. The capacity is len(store.Slots()).
func New[T any, S Storage[T]](store S, opts ...Option) *Vector[T, S] {
	return &Vector[T, S]{
		store: store,
		buf:   store.Slots(),
		opts:  applyOptions(opts),
	}
}

// Make creates an empty vector of capacity n backed by ValueStorage.
func Make[T any](n int, opts ...Option) (*Vector[T, *ValueStorage[T]], error) {
	store, err := NewValueStorage[T](n)
	if err != nil {
		return nil, err
	}
	return New[T](store, opts...), nil
}

// MakeRaw creates an empty vector of capacity n backed by RawStorage.
func MakeRaw[T any](n int, opts ...Option) (*Vector[T, *RawStorage[T]], error) {
	store, err := NewRawStorage[T](n)
	if err != nil {
		return nil, err
	}
	return New[T](store, opts...), nil
}

// FromArray creates an empty vector that stores its elements in buf.
//
//	var backing [16]int
//	v := svector.FromArray(backing[:])
func FromArray[T any](buf []T, opts ...Option) *Vector[T, *ValueStorage[T]] {
	return New[T](WrapValues(buf), opts...)
}

// Storage returns the storage strategy backing the vector.
func (v *Vector[T, S]) Storage() S { return v.store }

// Cap returns the fixed capacity.
func (v *Vector[T, S]) Cap() int { return len(v.buf) }

// Len returns the number of live elements.
func (v *Vector[T, S]) Len() int { return v.n }

// Empty reports whether Len() == 0.
func (v *Vector[T, S]) Empty() bool { return v.n == 0 }

// Full reports whether Len() == Cap().
func (v *Vector[T, S]) Full() bool { return v.n == len(v.buf) }

// At returns the element at index i.
func (v *Vector[T, S]) At(i int) T {
	v.checkIndex(i)
	return v.buf[i]
}

// Ref returns a pointer to the element at index i. The pointer stays valid
// for the lifetime of the vector.
func (v *Vector[T, S]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.buf[i]
}

// Set overwrites the element at index i.
func (v *Vector[T, S]) Set(i int, x T) {
	v.checkIndex(i)
	v.buf[i] = x
}

// Slice returns the live elements. The result aliases the vector's storage
// and its capacity is clipped, so appending to it never writes into the vector.
func (v *Vector[T, S]) Slice() []T { return v.buf[:v.n:v.n] }

// Data returns every slot of the backing buffer, including dead ones.
// Indexing it is not checked against Len.
func (v *Vector[T, S]) Data() []T { return v.buf }

// All returns an iterator over index/value pairs of the live elements.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Clear marks every element dead. Slots are not zeroed.
func (v *Vector[T, S]) Clear() { v.n = 0 }

// Resize sets the length to n. Values of n outside [0, Cap()] are ignored.
func (v *Vector[T, S]) Resize(n int) {
	if n < 0 || n > len(v.buf) {
		return
	}
	v.n = n
}

// Push appends x. On a full vector the value is dropped, or Push panics
// with ErrCapacityExceeded under OverflowPanic.
func (v *Vector[T, S]) Push(x T) {
	if !v.TryPush(x) && v.opts.overflow == OverflowPanic {
		panic(ErrCapacityExceeded)
	}
}

// TryPush appends x and reports whether it was stored.
func (v *Vector[T, S]) TryPush(x T) bool {
	if v.n == len(v.buf) {
		return false
	}
	v.buf[v.n] = x
	v.n++
	return true
}

// Pop removes the last element. It is a no-op on an empty vector.
func (v *Vector[T, S]) Pop() {
	if v.n > 0 {
		v.n--
	}
}

// Last returns the last live element.
func (v *Vector[T, S]) Last() (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	return v.buf[v.n-1], true
}

// EraseAt removes the element at index i by moving the last element into
// its slot. Order is not preserved. It is a no-op on an empty vector.
//
// Built with the utl_unchecked tag, an i outside the buffer panics before the
// vector is modified, and an i in [Len, Cap) drops the last element.
func (v *Vector[T, S]) EraseAt(i int) {
	if v.n == 0 {
		return
	}
	v.checkIndex(i)
	last := v.n - 1
	if i != last {
		v.buf[i] = v.buf[last]
	}
	v.n = last
}

// Erase removes the element p points to, as EraseAt does. p must have been
// obtained from Ref or from Slice/Data of this vector and address a live slot.
func (v *Vector[T, S]) Erase(p *T) {
	if v.n == 0 {
		return
	}
	i, ok := v.indexOf(p)
	if !ok {
		if checked {
			panic(&ErrForeignPointer{Len: v.n})
		}
		return
	}
	v.EraseAt(i)
}

// Clone returns an independent copy backed by a copy of the storage. It
// returns nil if S does not provide a Clone() S method; the built-in
// strategies both do.
func (v *Vector[T, S]) Clone() *Vector[T, S] {
	c, ok := any(v.store).(interface{ Clone() S })
	if !ok {
		return nil
	}
	store := c.Clone()
	return &Vector[T, S]{
		store: store,
		buf:   store.Slots(),
		n:     v.n,
		opts:  v.opts,
	}
}

// String formats the live elements like a slice.
func (v *Vector[T, S]) String() string {
	return fmt.Sprint(v.Slice())
}

func (v *Vector[T, S]) checkIndex(i int) {
	if checked && (i < 0 || i >= v.n) {
		panic(&ErrIndexOutOfRange{Index: i, Len: v.n})
	}
}

// indexOf maps p to a live index without dereferencing it.
func (v *Vector[T, S]) indexOf(p *T) (int, bool) {
	if p == nil {
		return 0, false
	}

	size := unsafe.Sizeof(*p)
	if size == 0 {
		// Zero-size values share an address; they are interchangeable.
		return v.n - 1, true
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(v.buf))) //nolint:gosec // address comparison only
	addr := uintptr(unsafe.Pointer(p))                       //nolint:gosec // address comparison only
	if addr < base {
		return 0, false
	}

	off := addr - base
	if off%size != 0 {
		return 0, false
	}

	i := off / size
	if i >= uintptr(v.n) {
		return 0, false
	}
	return int(i), true
}
