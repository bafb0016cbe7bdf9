// Package utl is a collection of small, allocation-conscious utility
// primitives for Go.
//
// # Packages
//
//   - svector: fixed-capacity vector with pluggable storage (value slots or
//     aligned raw memory). Never reallocates; overflow is silently dropped.
//   - bits: bit helpers for bytes and byte arrays, Roaring bitmap exchange.
//   - imath: integer helpers (ceil division, range mapping, power, digits, factorial).
//   - hexconv: hex/decimal text to binary conversions that never fail.
//   - hexlog: hex and bit dumps with an ASCII gutter.
//   - timing: CPU-time measurement of functions.
//
// This package provides the structured Logger shared by the command-line
// tool in cmd/utl.
//
// # Quick Start
//
//	v, _ := svector.Make[int](5)
//	for i := 1; i <= 6; i++ {
//	    v.Push(i) // the 6th push is dropped
//	}
//	fmt.Println(v) // [1 2 3 4 5]
//
//	raw, _ := svector.MakeRaw[uint16](4)
//	raw.Push(0xbeef)
//	hexlog.Hex(raw.Storage().Bytes())
package utl
