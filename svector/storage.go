package svector

import (
	"reflect"

	"github.com/hupe1980/utl/internal/conv"
	"github.com/hupe1980/utl/internal/mem"
)

// Storage is a storage strategy: it owns the backing slots of a Vector.
//
// Slots returns exactly Cap() slots, slot 0 first. Implementations must return
// the same backing array on every call.
type Storage[T any] interface {
	Slots() []T
}

// ValueStorage backs a vector with a plain []T. Every slot holds a zero value
// from the moment the storage is created.
type ValueStorage[T any] struct {
	slots []T
}

// NewValueStorage allocates storage for n zero-valued elements.
func NewValueStorage[T any](n int) (*ValueStorage[T], error) {
	if n < 0 {
		return nil, &ErrInvalidCapacity{Capacity: n}
	}
	return &ValueStorage[T]{slots: make([]T, n)}, nil
}

// WrapValues uses buf as the backing slots. The capacity is len(buf); the
// current contents of buf become the stale values of unused slots.
func WrapValues[T any](buf []T) *ValueStorage[T] {
	return &ValueStorage[T]{slots: buf[:len(buf):len(buf)]}
}

// Slots implements Storage.
func (s *ValueStorage[T]) Slots() []T { return s.slots }

// RawStorage backs a vector with an aligned byte buffer of n*sizeof(T) bytes
// viewed as []T. Slots carry no meaning until a Push writes them.
type RawStorage[T any] struct {
	raw   []byte
	slots []T
}

// NewRawStorage allocates raw storage for n elements.
//
// It fails with *ErrUnsupportedElem if T contains pointers and with
// *ErrInvalidCapacity if n is negative or the aligned buffer for n elements
// would overflow or exceed mem.MaxAlloc.
func NewRawStorage[T any](n int) (*RawStorage[T], error) {
	if n < 0 {
		return nil, &ErrInvalidCapacity{Capacity: n}
	}

	typ := reflect.TypeFor[T]()
	if mem.HasPointers(typ) {
		return nil, &ErrUnsupportedElem{Type: typ}
	}

	size, err := conv.MulInt(n, mem.SizeOf[T]())
	if err != nil {
		return nil, &ErrInvalidCapacity{Capacity: n, cause: err}
	}
	if err := mem.CheckAlloc(size); err != nil {
		return nil, &ErrInvalidCapacity{Capacity: n, cause: err}
	}

	raw := mem.AllocAligned(size)

	return &RawStorage[T]{
		raw:   raw,
		slots: mem.View[T](raw, n),
	}, nil
}

// Slots implements Storage.
func (s *RawStorage[T]) Slots() []T { return s.slots }

// Bytes returns the memory image of all slots, live or not.
func (s *RawStorage[T]) Bytes() []byte { return s.raw }

// Clone returns a copy of the storage with its own backing array.
func (s *ValueStorage[T]) Clone() *ValueStorage[T] {
	slots := make([]T, len(s.slots))
	copy(slots, s.slots)
	return &ValueStorage[T]{slots: slots}
}

// Clone returns a copy of the storage with its own aligned buffer.
func (s *RawStorage[T]) Clone() *RawStorage[T] {
	raw := mem.AllocAligned(len(s.raw))
	copy(raw, s.raw)
	return &RawStorage[T]{
		raw:   raw,
		slots: mem.View[T](raw, len(s.slots)),
	}
}
