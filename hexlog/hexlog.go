package hexlog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/hupe1980/utl/bits"
	"github.com/hupe1980/utl/imath"
)

// ErrBitRange is returned by Bits when the requested range exceeds the data.
var ErrBitRange = errors.New("hexlog: bit range exceeds data")

func printable(c byte) byte {
	if c >= 0x20 && c < 0x7f {
		return c
	}
	return '.'
}

// Hex writes data as hex with an ASCII gutter, each line prefixed with "| ".
func Hex(data []byte, opts ...Option) error {
	o := applyOptions(opts)
	bw := bufio.NewWriter(o.w)
	writeHex(bw, data, func(uint64) { bw.WriteString("| ") }, o.base)
	return bw.Flush()
}

// HexWithAddr writes a header line followed by data as hex, each line
// prefixed with the address of its first byte.
func HexWithAddr(data []byte, opts ...Option) error {
	o := applyOptions(opts)
	bw := bufio.NewWriter(o.w)
	fmt.Fprintf(bw, "[%08x]: %d bytes \n", o.base, len(data))
	writeHex(bw, data, func(addr uint64) { fmt.Fprintf(bw, "[%08x]  ", addr) }, o.base)
	return bw.Flush()
}

// HexString returns the Hex rendering of data.
func HexString(data []byte) string {
	var buf bytes.Buffer
	_ = Hex(data, WithWriter(&buf))
	return buf.String()
}

func writeHex(bw *bufio.Writer, data []byte, lineBegin func(addr uint64), base uint64) {
	n := len(data)
	if n == 0 {
		return
	}

	for i, b := range data {
		if i&15 == 0 {
			lineBegin(base + uint64(i)) //nolint:gosec // i is non-negative
		}

		fmt.Fprintf(bw, "%02x ", b)

		if i&7 == 7 {
			bw.WriteByte(' ')
		}

		if i&15 == 15 {
			bw.WriteByte('|')
			for _, c := range data[i-15 : i+1] {
				bw.WriteByte(printable(c))
			}
			bw.WriteString("|\n")
		}
	}

	rem := n & 15
	if rem == 0 {
		return
	}

	pad := (16 - rem) * 3
	if rem < 8 {
		pad++
	}
	fmt.Fprintf(bw, "%*c |", pad, ' ')
	for _, c := range data[n-rem:] {
		bw.WriteByte(printable(c))
	}
	for j := 0; j < 16-rem; j++ {
		bw.WriteByte('.')
	}
	bw.WriteString("|\n")
}

// Bits writes nbits bits of data starting at bit offset pos, 64 bits per
// line with each byte printed MSB first, followed by an ASCII gutter.
//
// Bits are read LSB first (see bits.GetArrBit). The header line is always
// written. A non-positive nbits writes nothing else; otherwise it returns
// ErrBitRange if pos is negative or pos+nbits exceeds the data.
func Bits(data []byte, nbits, pos int, opts ...Option) error {
	o := applyOptions(opts)
	bw := bufio.NewWriter(o.w)

	fmt.Fprintf(bw, "[%08x]: %d bits with %d offset \n", o.base, nbits, pos)

	if nbits <= 0 {
		return bw.Flush()
	}
	if pos < 0 || pos > len(data)*8 || nbits > len(data)*8-pos {
		if err := bw.Flush(); err != nil {
			return err
		}
		return ErrBitRange
	}

	off := pos & 7
	rem := nbits & 7

	var line [8]byte

	for i := 0; i < nbits; i++ {
		if i&63 == 0 {
			fmt.Fprintf(bw, "[%08x : %d]  ", o.base+uint64(pos>>3), off) //nolint:gosec // pos is non-negative
		}

		bits.PutArrBit(line[:], i&63, bits.GetArrBit(data, pos))
		pos++

		if i&7 == 7 {
			writeByteBits(bw, line[(i&63)>>3], 8)
			bw.WriteByte(' ')
		} else if rem != 0 && i == nbits-1 {
			writeByteBits(bw, line[(i&63)>>3], rem)
		}

		if i&63 == 63 {
			bw.WriteString(" |")
			for _, c := range line {
				bw.WriteByte(printable(c))
			}
			bw.WriteString("|\n")
		}
	}

	remBits := nbits & 63
	if remBits == 0 {
		return bw.Flush()
	}

	remBytes := remBits >> 3
	fillBits := 64 - remBits
	fillBytes := fillBits >> 3

	fmt.Fprintf(bw, "%*c |", fillBits+bits.BytesInBits(fillBits), ' ')
	for _, c := range line[:remBytes] {
		bw.WriteByte(printable(c))
	}
	if rem != 0 {
		bw.WriteByte('.')
	}
	for j := 0; j < fillBytes; j++ {
		bw.WriteByte('.')
	}
	bw.WriteString("|\n")

	return bw.Flush()
}

// writeByteBits writes the low n bits of c, most significant first.
func writeByteBits(bw *bufio.Writer, c byte, n int) {
	for j := n - 1; j >= 0; j-- {
		if bits.GetBit(c, j) {
			bw.WriteByte('1')
		} else {
			bw.WriteByte('0')
		}
	}
}

// Lines returns the number of lines Hex writes for n bytes.
func Lines(n int) int {
	if n <= 0 {
		return 0
	}
	return int(imath.Uceil(uint(n), 16))
}
