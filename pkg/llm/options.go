package llm

import loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"

// Option configures optional backend dependencies.
type Option func(*options)

type options struct {
	logger  loggerpkg.Logger
	verbose bool
}

// WithLogger injects a logger used for verbose request tracing.
func WithLogger(l loggerpkg.Logger, verbose bool) Option {
	return func(o *options) {
		o.logger = l
		o.verbose = verbose
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = loggerpkg.OrNop(o.logger)
	return o
}
