// Package bits provides bit helpers for bytes and byte arrays.
//
// Bit n of an array lives in byte n>>3 at position n&7, counted from the
// least significant bit. Array helpers do not check bounds beyond what the
// Go runtime does.
package bits
