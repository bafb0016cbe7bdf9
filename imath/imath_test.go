package imath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUceil(t *testing.T) {
	assert.Equal(t, uint(0), Uceil[uint](0, 4))
	assert.Equal(t, uint(1), Uceil[uint](1, 4))
	assert.Equal(t, uint(1), Uceil[uint](4, 4))
	assert.Equal(t, uint(2), Uceil[uint](5, 4))
	assert.Equal(t, uint8(0), Uceil[uint8](10, 0), "zero divisor")
	assert.Equal(t, uint64(3), Uceil[uint64](9, 3))
}

func TestImap(t *testing.T) {
	tests := []struct {
		name                                    string
		val, inMin, inMax, outMin, outMax, want int
	}{
		{"identity", 5, 0, 10, 0, 10, 5},
		{"scale up", 512, 0, 1023, 0, 255, 127},
		{"max", 1023, 0, 1023, 0, 255, 255},
		{"inverted", 0, 0, 10, 100, 0, 100},
		{"negative", 5, 0, 10, -10, 10, 0},
		{"empty range", 3, 7, 7, 1, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Imap(tt.val, tt.inMin, tt.inMax, tt.outMin, tt.outMax))
		})
	}
}

func TestIpow(t *testing.T) {
	assert.Equal(t, 1, Ipow(7, 0))
	assert.Equal(t, 7, Ipow(7, 1))
	assert.Equal(t, 1024, Ipow(2, 10))
	assert.Equal(t, -27, Ipow(-3, 3))
	assert.Equal(t, 1, Ipow(5, -2))
	assert.Equal(t, uint64(1)<<63, Ipow[uint64](2, 63))
	assert.Equal(t, int64(math.Pow(10, 18)), Ipow[int64](10, 18))
}

func TestIlen(t *testing.T) {
	tests := []struct {
		val  int64
		want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3}, {-100, 3}, {math.MaxInt64, 19},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ilen(tt.val), "val=%d", tt.val)
	}
	assert.Equal(t, 3, Ilen[uint8](255))
}

func TestFact(t *testing.T) {
	assert.Equal(t, 1, Fact(0))
	assert.Equal(t, 1, Fact(1))
	assert.Equal(t, 120, Fact(5))
	assert.Equal(t, uint64(2432902008176640000), Fact[uint64](20))
	assert.Equal(t, 1, Fact(-4))
}
