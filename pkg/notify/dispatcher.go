package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// callConfirm labels dropped confirmations in logs and metrics.
const callConfirm = "confirm"

// Sink receives dispatcher calls and turns them into something the user can see.
type Sink interface {
	// Alert shows a validated alert.
	Alert(ctx context.Context, spec toast.AlertSpec) error
	// Confirm asks the user and returns a future with the answer.
	// The request must settle false once ctx is done.
	Confirm(ctx context.Context, spec toast.ConfirmSpec) *async.Future[bool]
}

type registration struct {
	id   string
	sink Sink
}

// Dispatcher fans alerts and confirmations out to its subscribed sinks.
// It is safe for concurrent use.
type Dispatcher struct {
	sinks []registration
	mu    sync.RWMutex

	logger          *slog.Logger
	metrics         *metrics.Collector
	defaultDuration time.Duration
	position        toast.Position
	confirmLabel    string
	cancelLabel     string
}

// New creates a dispatcher with no sinks.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers sink and returns the function that removes it again.
// The returned function is safe to call more than once.
func (d *Dispatcher) Subscribe(sink Sink) (unsubscribe func()) {
	reg := registration{id: uuid.NewString(), sink: sink}

	d.mu.Lock()
	d.sinks = append(d.sinks, reg)
	n := len(d.sinks)
	d.mu.Unlock()

	d.log().LogAttrs(context.Background(), slog.LevelDebug, "sink subscribed",
		logger.SinkID(reg.id),
		logger.Sinks(n),
	)

	var once sync.Once
	return func() {
		once.Do(func() { d.unsubscribe(reg.id) })
	}
}

func (d *Dispatcher) unsubscribe(id string) {
	d.mu.Lock()
	for i, reg := range d.sinks {
		if reg.id == id {
			d.sinks = append(d.sinks[:i:i], d.sinks[i+1:]...)
			break
		}
	}
	n := len(d.sinks)
	d.mu.Unlock()

	d.log().LogAttrs(context.Background(), slog.LevelDebug, "sink unsubscribed",
		logger.SinkID(id),
		logger.Sinks(n),
	)
}

// Sinks returns the number of subscribed sinks.
func (d *Dispatcher) Sinks() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sinks)
}

// Success shows a success alert.
func (d *Dispatcher) Success(ctx context.Context, msg string, opts ...MessageOption) error {
	return d.Notify(ctx, toast.KindSuccess, msg, opts...)
}

// Error shows an error alert.
func (d *Dispatcher) Error(ctx context.Context, msg string, opts ...MessageOption) error {
	return d.Notify(ctx, toast.KindError, msg, opts...)
}

// Warning shows a warning alert.
func (d *Dispatcher) Warning(ctx context.Context, msg string, opts ...MessageOption) error {
	return d.Notify(ctx, toast.KindWarning, msg, opts...)
}

// Info shows an informational alert.
func (d *Dispatcher) Info(ctx context.Context, msg string, opts ...MessageOption) error {
	return d.Notify(ctx, toast.KindInfo, msg, opts...)
}

// Notify validates the alert and broadcasts it to every sink.
//
// Only validation errors are returned. Sink failures, such as a bridge that
// unmounted mid-call, are logged and absorbed. With no sink subscribed the
// alert is dropped.
func (d *Dispatcher) Notify(ctx context.Context, kind toast.Kind, msg string, opts ...MessageOption) error {
	m := d.message(opts)
	spec := toast.AlertSpec{
		Kind:     kind,
		Title:    m.title,
		Message:  msg,
		Duration: m.duration,
		Position: m.position,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	sinks := d.snapshot()
	if len(sinks) == 0 {
		d.dropped(ctx, kind.String())
		return nil
	}

	for _, reg := range sinks {
		if err := reg.sink.Alert(ctx, spec); err != nil {
			level := slog.LevelWarn
			if errors.Is(err, toast.ErrQueueClosed) {
				level = slog.LevelDebug
			}
			d.log().LogAttrs(ctx, level, "sink rejected alert",
				logger.SinkID(reg.id),
				logger.Kind(kind.String()),
				logger.Error(err),
			)
		}
	}

	return nil
}

// ConfirmAsync asks every sink and returns a future with the first answer.
//
// The other sinks' requests are withdrawn as soon as one answers and settle false.
// With no sink subscribed the future is already settled to false. On a validation
// error the future is settled to false as well, so it is always safe to await.
func (d *Dispatcher) ConfirmAsync(ctx context.Context, msg string, opts ...MessageOption) (*async.Future[bool], error) {
	m := d.message(opts)
	spec := toast.ConfirmSpec{
		Title:        m.title,
		Message:      msg,
		ConfirmLabel: m.confirmLabel,
		CancelLabel:  m.cancelLabel,
	}
	if err := spec.Validate(); err != nil {
		return async.Resolved(false), err
	}

	sinks := d.snapshot()
	switch len(sinks) {
	case 0:
		d.dropped(ctx, callConfirm)
		return async.Resolved(false), nil
	case 1:
		return sinks[0].sink.Confirm(ctx, spec), nil
	}

	fanCtx, cancel := context.WithCancel(ctx)
	futures := make([]*async.Future[bool], len(sinks))
	for i, reg := range sinks {
		futures[i] = reg.sink.Confirm(fanCtx, spec)
	}

	future, resolve := async.NewPromise[bool]()
	go func() {
		i, ok, err := async.WaitAny(futures...)
		cancel()
		d.log().LogAttrs(ctx, slog.LevelDebug, "confirmation answered",
			logger.SinkID(sinks[i].id),
			logger.Sinks(len(sinks)),
			slog.Bool("confirmed", ok),
		)
		resolve(ok && err == nil, err)
	}()

	return future, nil
}

// Confirm asks the user and blocks until an answer arrives or ctx is done.
// A cancelled ctx answers false without an error.
func (d *Dispatcher) Confirm(ctx context.Context, msg string, opts ...MessageOption) (bool, error) {
	future, err := d.ConfirmAsync(ctx, msg, opts...)
	if err != nil {
		return false, err
	}

	ok, err := future.AwaitContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func (d *Dispatcher) message(opts []MessageOption) message {
	m := message{
		duration:     d.defaultDuration,
		position:     d.position,
		confirmLabel: d.confirmLabel,
		cancelLabel:  d.cancelLabel,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (d *Dispatcher) snapshot() []registration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]registration(nil), d.sinks...)
}

func (d *Dispatcher) dropped(ctx context.Context, call string) {
	d.metrics.DispatchDropped(call)
	d.log().LogAttrs(ctx, slog.LevelWarn, "no sink subscribed, call dropped",
		slog.String("call", call),
	)
}

func (d *Dispatcher) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}
