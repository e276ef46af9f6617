package engine

import "time"

// Option configures an Engine.
type Option func(*config)

type config struct {
	timeout time.Duration
}

func defaultConfig() config {
	return config{
		timeout: EvalTimeout,
	}
}

// WithTimeout sets the hard limit for a single evaluation. Non-positive
// durations keep the default EvalTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}
