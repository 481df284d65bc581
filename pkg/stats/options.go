package stats

import "go.uber.org/zap"

type options struct {
	logger      *zap.Logger
	skipUnknown bool
}

// Option configures Construct and NewBuilder.
type Option func(*options)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSkipUnknownTypes makes Construct drop records whose type tag is not
// declared, logging a warning for each, instead of failing the snapshot.
func WithSkipUnknownTypes() Option {
	return func(o *options) {
		o.skipUnknown = true
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
