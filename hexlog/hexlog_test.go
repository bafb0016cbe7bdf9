package hexlog

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex_FullLine(t *testing.T) {
	got := HexString([]byte("0123456789abcdef"))
	want := "| 30 31 32 33 34 35 36 37  38 39 61 62 63 64 65 66  |0123456789abcdef|\n"
	assert.Equal(t, want, got)
}

func TestHex_PartialLine(t *testing.T) {
	got := HexString([]byte("Hello"))
	want := "| 48 65 6c 6c 6f " + strings.Repeat(" ", 34) + " |Hello" + strings.Repeat(".", 11) + "|\n"
	assert.Equal(t, want, got)
}

func TestHex_Alignment(t *testing.T) {
	for n := 1; n <= 48; n++ {
		data := bytes.Repeat([]byte{0x00}, n)
		lines := strings.Split(strings.TrimSuffix(HexString(data), "\n"), "\n")
		require.Len(t, lines, Lines(n), "n=%d", n)
		for _, l := range lines {
			assert.Len(t, l, len("| ")+50+18, "n=%d line %q", n, l)
		}
	}
}

func TestHex_NonPrintable(t *testing.T) {
	got := HexString([]byte{0x00, 0x7f, 0x80, 'A', 0xff, ' '})
	assert.Contains(t, got, "|...A. ..........|")
}

func TestHex_Empty(t *testing.T) {
	assert.Equal(t, "", HexString(nil))
}

func TestHexWithAddr(t *testing.T) {
	var buf bytes.Buffer
	data := []byte("ABCDEFGHIJKLMNOPQ")

	require.NoError(t, HexWithAddr(data, WithWriter(&buf), WithBaseAddress(0x1000)))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[00001000]: 17 bytes ", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[00001000]  41 42"))
	assert.True(t, strings.HasSuffix(lines[1], "|ABCDEFGHIJKLMNOP|"))
	assert.Equal(t, "[00001010]  51 "+strings.Repeat(" ", 46)+" |Q"+strings.Repeat(".", 15)+"|", lines[2])
	assert.Equal(t, "", lines[3])
}

func TestBits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bits([]byte("Hi"), 16, 0, WithWriter(&buf)))

	want := "[00000000]: 16 bits with 0 offset \n" +
		"[00000000 : 0]  01001000 01101001 " + strings.Repeat(" ", 54) + " |Hi......|\n"
	assert.Equal(t, want, buf.String())
}

func TestBits_PartialByte(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bits([]byte("Hi"), 12, 0, WithWriter(&buf)))

	want := "[00000000]: 12 bits with 0 offset \n" +
		"[00000000 : 0]  01001000 1001" + strings.Repeat(" ", 59) + " |H.......|\n"
	assert.Equal(t, want, buf.String())
}

func TestBits_Offset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bits([]byte("Hi"), 8, 4, WithWriter(&buf)))

	want := "[00000000]: 8 bits with 4 offset \n" +
		"[00000000 : 4]  10010100 " + strings.Repeat(" ", 63) + " |........|\n"
	assert.Equal(t, want, buf.String())
}

func TestBits_FullLines(t *testing.T) {
	var buf bytes.Buffer
	data := []byte("ABCDEFGHabcdefgh")
	require.NoError(t, Bits(data, 128, 0, WithWriter(&buf), WithBaseAddress(0x20)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "[00000020 : 0]  01000001 "))
	assert.True(t, strings.HasSuffix(lines[1], " |ABCDEFGH|"))
	assert.True(t, strings.HasPrefix(lines[2], "[00000028 : 0]  01100001 "))
	assert.True(t, strings.HasSuffix(lines[2], " |abcdefgh|"))
	assert.Equal(t, len(lines[1]), len(lines[2]))
}

func TestBits_Range(t *testing.T) {
	var buf bytes.Buffer
	err := Bits([]byte{0x01}, 9, 0, WithWriter(&buf))
	assert.ErrorIs(t, err, ErrBitRange)
	assert.Equal(t, "[00000000]: 9 bits with 0 offset \n", buf.String())

	buf.Reset()
	assert.ErrorIs(t, Bits([]byte{0x01}, 1, -1, WithWriter(&buf)), ErrBitRange)

	buf.Reset()
	require.NoError(t, Bits(nil, 0, 0, WithWriter(&buf)))
	assert.Equal(t, "[00000000]: 0 bits with 0 offset \n", buf.String())
}

func TestBits_RangeOverflow(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		nbits int
		pos   int
	}{
		{"huge length", []byte{0xff}, math.MaxInt, 1},
		{"huge length at zero", []byte{0xff}, math.MaxInt, 0},
		{"huge offset", []byte{0xff}, 1, math.MaxInt},
		{"offset past end", []byte{0xff}, 1, 9},
		{"empty data", nil, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				err = Bits(tt.data, tt.nbits, tt.pos, WithWriter(io.Discard))
			})
			assert.ErrorIs(t, err, ErrBitRange)
		})
	}

	assert.NoError(t, Bits([]byte{0xff}, 1, 7, WithWriter(io.Discard)), "last bit is in range")
}

func TestLines(t *testing.T) {
	assert.Equal(t, 0, Lines(0))
	assert.Equal(t, 1, Lines(1))
	assert.Equal(t, 1, Lines(16))
	assert.Equal(t, 2, Lines(17))
}
