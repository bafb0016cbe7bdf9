package svector

// OverflowPolicy selects what Push does on a full vector.
type OverflowPolicy int

const (
	// OverflowDrop silently discards the value. This is the default.
	OverflowDrop OverflowPolicy = iota
	// OverflowPanic panics with ErrCapacityExceeded.
	OverflowPanic
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowDrop:
		return "drop"
	case OverflowPanic:
		return "panic"
	default:
		return "unknown"
	}
}

type options struct {
	overflow OverflowPolicy
}

// Option configures a Vector.
type Option func(*options)

// WithOverflowPolicy configures the behavior of Push on a full vector.
//
// TryPush is unaffected and always reports a drop by returning false.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *options) {
		o.overflow = p
	}
}

func applyOptions(opts []Option) options {
	o := options{overflow: OverflowDrop}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
