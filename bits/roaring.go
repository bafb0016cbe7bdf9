package bits

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/utl/internal/conv"
)

// Positions returns the indices of the set bits of arr as a Roaring bitmap.
//
// It fails if arr holds more bits than a uint32 position can address.
func Positions(arr []byte) (*roaring.Bitmap, error) {
	if len(arr) > 0 {
		if _, err := conv.Uint64ToUint32(uint64(len(arr))*8 - 1); err != nil {
			return nil, err
		}
	}

	rb := roaring.New()
	for i, b := range arr {
		if b == 0 {
			continue
		}
		base := uint32(i) << 3 //nolint:gosec // bounded above
		for j := 0; j < 8; j++ {
			if GetBit(b, j) {
				rb.Add(base + uint32(j))
			}
		}
	}
	return rb, nil
}

// FromPositions sets the bits of arr listed in rb. Positions past the end of
// arr are skipped. It returns the number of bits set.
func FromPositions(rb *roaring.Bitmap, arr []byte) int {
	limit := uint64(len(arr)) * 8
	n := 0
	it := rb.Iterator()
	for it.HasNext() {
		pos := it.Next()
		if uint64(pos) >= limit {
			break
		}
		SetArrBit(arr, int(pos))
		n++
	}
	return n
}
