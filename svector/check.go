//go:build !utl_unchecked

package svector

// checked enables precondition checks on indices and erase pointers.
const checked = true
