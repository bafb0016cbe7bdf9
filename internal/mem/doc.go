// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned byte buffers and typed views over them. The
// views are only valid for element types without pointers: the garbage
// collector does not scan byte memory, so references stored there would
// not keep their targets alive.
package mem
