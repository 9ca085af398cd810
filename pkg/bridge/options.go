package bridge

import (
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/toastkit/pkg/metrics"
)

// Option configures a Bridge at mount time.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *metrics.Collector
	clock   clockwork.Clock
}

// WithLogger sets the logger used by the bridge and its queue.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithMetrics records queue traffic on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// WithClock sets the clock driving auto-dismiss timers.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}
