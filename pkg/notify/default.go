package notify

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

var defaultDispatcher atomic.Pointer[Dispatcher]

func init() {
	defaultDispatcher.Store(New())
}

// Default returns the process-wide dispatcher.
func Default() *Dispatcher {
	return defaultDispatcher.Load()
}

// SetDefault replaces the process-wide dispatcher. Sinks subscribed to the
// previous one stay with it. A nil d is ignored.
func SetDefault(d *Dispatcher) {
	if d != nil {
		defaultDispatcher.Store(d)
	}
}

// Subscribe registers sink with the Default dispatcher.
func Subscribe(sink Sink) (unsubscribe func()) {
	return Default().Subscribe(sink)
}

// Success shows a success alert through the Default dispatcher.
func Success(ctx context.Context, msg string, opts ...MessageOption) error {
	return Default().Success(ctx, msg, opts...)
}

// Error shows an error alert through the Default dispatcher.
func Error(ctx context.Context, msg string, opts ...MessageOption) error {
	return Default().Error(ctx, msg, opts...)
}

// Warning shows a warning alert through the Default dispatcher.
func Warning(ctx context.Context, msg string, opts ...MessageOption) error {
	return Default().Warning(ctx, msg, opts...)
}

// Info shows an informational alert through the Default dispatcher.
func Info(ctx context.Context, msg string, opts ...MessageOption) error {
	return Default().Info(ctx, msg, opts...)
}

// Notify shows an alert of kind through the Default dispatcher.
func Notify(ctx context.Context, kind toast.Kind, msg string, opts ...MessageOption) error {
	return Default().Notify(ctx, kind, msg, opts...)
}

// ConfirmAsync asks the user through the Default dispatcher without blocking.
func ConfirmAsync(ctx context.Context, msg string, opts ...MessageOption) (*async.Future[bool], error) {
	return Default().ConfirmAsync(ctx, msg, opts...)
}

// Confirm asks the user through the Default dispatcher and waits for the answer.
func Confirm(ctx context.Context, msg string, opts ...MessageOption) (bool, error) {
	return Default().Confirm(ctx, msg, opts...)
}
