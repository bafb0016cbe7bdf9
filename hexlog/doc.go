// Package hexlog pretty-prints memory as hex or bits with an ASCII gutter.
//
// Hex output, 16 bytes per line:
//
//	| 48 65 6c 6c 6f 2c 20 77  6f 72 6c 64 21 0a 00 01  |Hello, world!...|
//
// Bits output, 64 bits per line, each byte MSB first:
//
//	[00000000 : 0]  01001000 01101001 ...  |Hi......|
//
// Addresses are offsets from a base address (0 unless WithBaseAddress is given).
package hexlog
