package timing

import (
	"log/slog"
	"time"
)

type options struct {
	clock Clock
}

// Option configures a measurement.
type Option func(*options)

// WithClock selects the clock. If nil is passed, CPUClock is used.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c == nil {
			c = CPUClock
		}
		o.clock = c
	}
}

func applyOptions(opts []Option) options {
	o := options{clock: CPUClock}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// ExecTime calls fn n times and returns the total elapsed time.
// n < 1 is treated as 1.
func ExecTime(n int, fn func(), opts ...Option) time.Duration {
	o := applyOptions(opts)
	if n < 1 {
		n = 1
	}

	begin := o.clock.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	return o.clock.Now() - begin
}

// ExecTimeAvg returns the average time of one call over n calls.
func ExecTimeAvg(n int, fn func(), opts ...Option) time.Duration {
	if n < 1 {
		n = 1
	}
	return ExecTime(n, fn, opts...) / time.Duration(n)
}

// Result is a named measurement.
type Result struct {
	Name  string
	Calls int
	Total time.Duration
}

// Avg returns the average time per call.
func (r Result) Avg() time.Duration {
	if r.Calls < 1 {
		return 0
	}
	return r.Total / time.Duration(r.Calls)
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.Int("calls", r.Calls),
		slog.Duration("total", r.Total),
		slog.Duration("avg", r.Avg()),
	)
}

// Measure runs fn n times and returns the named result.
func Measure(name string, n int, fn func(), opts ...Option) Result {
	if n < 1 {
		n = 1
	}
	return Result{
		Name:  name,
		Calls: n,
		Total: ExecTime(n, fn, opts...),
	}
}
