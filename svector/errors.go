package svector

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrCapacityExceeded is the panic value of Push on a full vector under OverflowPanic.
	ErrCapacityExceeded = errors.New("svector: capacity exceeded")
)

// ErrIndexOutOfRange indicates an index outside the live range [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("svector: index %d out of range [0:%d]", e.Index, e.Len)
}

// ErrForeignPointer indicates an Erase pointer that does not address a live slot.
type ErrForeignPointer struct {
	Len int
}

func (e *ErrForeignPointer) Error() string {
	return fmt.Sprintf("svector: pointer does not address a live element (len %d)", e.Len)
}

// ErrInvalidCapacity indicates a capacity that cannot be allocated.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCapacity struct {
	Capacity int
	cause    error
}

func (e *ErrInvalidCapacity) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("svector: invalid capacity %d: %v", e.Capacity, e.cause)
	}
	return fmt.Sprintf("svector: invalid capacity %d", e.Capacity)
}

func (e *ErrInvalidCapacity) Unwrap() error { return e.cause }

// ErrUnsupportedElem indicates an element type RawStorage cannot hold.
type ErrUnsupportedElem struct {
	Type reflect.Type
}

func (e *ErrUnsupportedElem) Error() string {
	return fmt.Sprintf("svector: raw storage cannot hold %v: type contains pointers", e.Type)
}
