package mem

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "capacity should be clipped for size %d", size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestView(t *testing.T) {
	buf := AllocAligned(4 * 8)
	s := View[uint64](buf, 4)
	require.Len(t, s, 4)

	s[1] = 0x0102030405060708
	assert.NotEqual(t, make([]byte, 32), buf, "view must share memory with the buffer")
	assert.Equal(t, buf, Bytes(s))

	assert.Empty(t, View[uint64](nil, 0))
	assert.Len(t, View[struct{}](nil, 3), 3)
	assert.Panics(t, func() { View[uint64](buf[:7], 1) })
}

func TestView_Misaligned(t *testing.T) {
	buf := AllocAligned(2 * 8)
	assert.PanicsWithValue(t, "mem: misaligned buffer for view", func() { View[uint64](buf[1:], 1) })
	assert.NotPanics(t, func() { View[uint64](buf[8:], 1) })
	assert.NotPanics(t, func() { View[byte](buf[1:], 3) }, "bytes have no alignment requirement")
}

func TestCheckAlloc(t *testing.T) {
	assert.NoError(t, CheckAlloc(0))
	assert.NoError(t, CheckAlloc(1024))
	assert.NoError(t, CheckAlloc(MaxAlloc-Alignment))

	err := CheckAlloc(math.MaxInt - 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer overflow")

	err = CheckAlloc(MaxAlloc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

func TestBytes(t *testing.T) {
	s := []uint16{0x0102, 0x0304}
	b := Bytes(s)
	assert.Len(t, b, 4)

	b[0] = 0xff
	assert.Equal(t, uint16(0xff), s[0]&0xff)

	assert.Nil(t, Bytes([]uint16{}))
	assert.Nil(t, Bytes(make([]struct{}, 5)))
}

func TestSizeAndAlign(t *testing.T) {
	assert.Equal(t, 8, SizeOf[int64]())
	assert.Equal(t, 0, SizeOf[struct{}]())
	assert.Equal(t, 4, AlignOf[int32]())
	assert.Equal(t, 1, AlignOf[[3]byte]())
}

type pair struct {
	A int32
	B [2]float64
}

type named struct {
	ID   int
	Name string
}

func TestHasPointers(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeOf(int(0)), false},
		{reflect.TypeOf(uint8(0)), false},
		{reflect.TypeOf(complex128(0)), false},
		{reflect.TypeOf([4]uint32{}), false},
		{reflect.TypeOf(pair{}), false},
		{reflect.TypeOf([0]*int{}), false},
		{reflect.TypeOf(""), true},
		{reflect.TypeOf(named{}), true},
		{reflect.TypeOf([]int{}), true},
		{reflect.TypeOf(map[int]int{}), true},
		{reflect.TypeOf(new(int)), true},
		{reflect.TypeOf([2]*int{}), true},
		{reflect.TypeOf(func() {}), true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPointers(tt.typ))
		})
	}
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size)
			}
		})
	}
}
