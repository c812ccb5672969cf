package agent

import loggerpkg "github.com/minhyannv/mcp-client-go/pkg/logger"

// Option configures optional runtime dependencies for Reconciler.
type Option func(*deps)

type deps struct {
	logger  loggerpkg.Logger
	verbose bool
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		d.logger = l
	}
}

// WithVerbose enables debug tracing of each turn.
func WithVerbose(verbose bool) Option {
	return func(d *deps) {
		d.verbose = verbose
	}
}
