package agent

import "github.com/studymesh/studymesh/logging"

// Agent is the capability interface every processing unit satisfies. The
// unit of work itself is the concrete type's Process method; the interface
// carries identification for audit trails and composition.
type Agent interface {
	Name() string
}

// Option customizes agent construction.
type Option func(*config)

type config struct {
	logger logging.Logger
}

// WithLogger attaches a logger to the agent. A nil logger is ignored and
// the NoOpLogger default stays in place.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: logging.NoOpLogger{}}
	for _, o := range opts {
		o(&c)
	}
	return c
}
