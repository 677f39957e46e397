package adblockgo

type options struct {
	logger              *Logger
	enableOptimizations bool
}

func defaultOptions() options {
	return options{
		logger:              NoopLogger(),
		enableOptimizations: true,
	}
}

// Option configures Engine construction.
type Option func(*options)

// WithLogger attaches a logger for serialize/deserialize operations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithOptimizations records whether rule-merging optimizations are applied
// when buckets are built. The flag is persisted with the state because it
// affects matching semantics.
func WithOptimizations(enabled bool) Option {
	return func(o *options) {
		o.enableOptimizations = enabled
	}
}
