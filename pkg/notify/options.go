package notify

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. Without it the dispatcher logs to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = log
	}
}

// WithMetrics records dropped calls on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(d *Dispatcher) {
		d.metrics = c
	}
}

// WithDefaultDuration sets the auto-dismiss delay for alerts that do not pass
// WithDuration. Zero keeps them until dismissed.
func WithDefaultDuration(duration time.Duration) Option {
	return func(d *Dispatcher) {
		if duration >= 0 {
			d.defaultDuration = duration
		}
	}
}

// WithDefaultLabels sets the button labels used when a confirmation does not
// override them. Empty values keep the queue defaults.
func WithDefaultLabels(confirm, cancel string) Option {
	return func(d *Dispatcher) {
		d.confirmLabel = confirm
		d.cancelLabel = cancel
	}
}

// WithDefaultPosition sets the screen corner for alerts that do not pass WithPosition.
func WithDefaultPosition(position toast.Position) Option {
	return func(d *Dispatcher) {
		d.position = position
	}
}

// MessageOption customizes a single alert or confirmation.
type MessageOption func(*message)

type message struct {
	title        string
	duration     time.Duration
	position     toast.Position
	confirmLabel string
	cancelLabel  string
}

// WithTitle sets the heading shown above the message.
func WithTitle(title string) MessageOption {
	return func(m *message) {
		m.title = title
	}
}

// WithDuration sets the auto-dismiss delay. Zero makes the alert sticky
// even when the dispatcher has a default duration.
func WithDuration(duration time.Duration) MessageOption {
	return func(m *message) {
		m.duration = duration
	}
}

// WithPosition sets the screen corner for an alert.
func WithPosition(position toast.Position) MessageOption {
	return func(m *message) {
		m.position = position
	}
}

// WithConfirmLabel sets the affirmative button label of a confirmation.
func WithConfirmLabel(label string) MessageOption {
	return func(m *message) {
		m.confirmLabel = label
	}
}

// WithCancelLabel sets the negative button label of a confirmation.
func WithCancelLabel(label string) MessageOption {
	return func(m *message) {
		m.cancelLabel = label
	}
}
