package omt

import "go.uber.org/zap"

// Option configures an OMT at construction time. The only
// construction-time knob is where to send observability logging.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger directs the OMT's representation-transition and rebalance
// logging to log. Unset, the OMT logs nowhere (zap.NewNop), so an OMT
// with no configuration has zero logging overhead.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

func resolveConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
