package toast

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// Option configures a Queue.
type Option func(*Queue)

// WithClock sets the clock used for timestamps and auto-dismiss timers.
func WithClock(clock clockwork.Clock) Option {
	return func(q *Queue) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// WithLogger sets the logger for the Queue.
func WithLogger(log *slog.Logger) Option {
	return func(q *Queue) {
		if log != nil {
			q.logger = log
		}
	}
}

// WithOnChange registers a hook called with a fresh snapshot after every mutation.
// Hooks may run concurrently; use Snapshot.Version to discard stale ones.
func WithOnChange(fn func(Snapshot)) Option {
	return func(q *Queue) {
		if fn != nil {
			q.onChange = append(q.onChange, fn)
		}
	}
}

// WithOnAlertRemoved registers a hook called for every alert that leaves the queue.
func WithOnAlertRemoved(fn func(Alert, RemoveReason)) Option {
	return func(q *Queue) {
		if fn != nil {
			q.onAlertRemoved = append(q.onAlertRemoved, fn)
		}
	}
}

// WithOnSettled registers a hook called for every confirmation once it is settled.
// The Confirmation passed in carries its final Settlement.
func WithOnSettled(fn func(Confirmation)) Option {
	return func(q *Queue) {
		if fn != nil {
			q.onSettled = append(q.onSettled, fn)
		}
	}
}
