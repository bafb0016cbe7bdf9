package hexlog

import (
	"io"
	"os"
)

type options struct {
	w    io.Writer
	base uint64
}

// Option configures a dump.
type Option func(*options)

// WithWriter sets the destination. If nil is passed, os.Stdout is used.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = os.Stdout
		}
		o.w = w
	}
}

// WithBaseAddress sets the address printed for the first byte of the dump.
func WithBaseAddress(addr uint64) Option {
	return func(o *options) {
		o.base = addr
	}
}

func applyOptions(opts []Option) options {
	o := options{w: os.Stdout}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
