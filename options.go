package arena

import "log/slog"

type options struct {
	blocking int
	source   SlabSource
	logger   *slog.Logger
}

// Option configures an Arena or a Pool.
type Option func(*options)

// WithBlocking sets the number of nodes per slab.
// If n <= 0, DefaultBlocking is used.
func WithBlocking(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultBlocking
		}
		o.blocking = n
	}
}

// WithSlabSource sets where an Arena obtains its slab memory.
// Pools always allocate from the Go heap and ignore this option.
//
// If nil is passed, HeapSource is used.
func WithSlabSource(src SlabSource) Option {
	return func(o *options) {
		if src == nil {
			src = HeapSource{}
		}
		o.source = src
	}
}

// WithLogger sets the logger used for slab lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		blocking: DefaultBlocking,
		source:   HeapSource{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoggerOf returns the logger configured by opts, or a discarding logger if
// none is set. Packages built on top of Arena and Pool use it to log with
// the same handler.
func LoggerOf(opts ...Option) *slog.Logger {
	return applyOptions(opts).logger
}
