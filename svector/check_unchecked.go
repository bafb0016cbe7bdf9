//go:build utl_unchecked

package svector

const checked = false
