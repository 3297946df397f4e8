package kdgo

import "log/slog"

type options struct {
	logger            *Logger
	parallelThreshold int
}

// Option configures Build and Rebuild behavior.
type Option func(*options)

// WithLogger configures structured logging for tree operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kdgo.NewJSONLogger(slog.LevelDebug)
//	tree, _ := kdgo.Build(points, 3, kdgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithParallelThreshold enables concurrent construction of sibling
// subtrees whose partitions hold at least threshold points. The call still
// returns only once the whole tree is built.
//
// A threshold of 0 (the default) keeps the build strictly sequential.
// Values below a few thousand points rarely pay for the goroutine
// overhead.
func WithParallelThreshold(threshold int) Option {
	return func(o *options) {
		o.parallelThreshold = threshold
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
