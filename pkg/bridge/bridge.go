package bridge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/broadcast"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/notify"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Bridge is a mounted sink: a dispatcher subscription backed by its own queue.
// It implements notify.Sink.
type Bridge struct {
	id          string
	queue       *toast.Queue
	feed        *broadcast.Feed[toast.Snapshot]
	unsubscribe func()
	logger      *slog.Logger
	metrics     *metrics.Collector

	published uint64
	pubMu     sync.Mutex

	unmountOnce sync.Once
	unmounted   chan struct{}
}

var _ notify.Sink = (*Bridge)(nil)

// Mount creates a fresh queue and subscribes it to d.
func Mount(d *notify.Dispatcher, opts ...Option) *Bridge {
	o := options{
		logger: slog.Default(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bridge{
		id:        uuid.NewString(),
		feed:      broadcast.NewFeed[toast.Snapshot](),
		metrics:   o.metrics,
		unmounted: make(chan struct{}),
	}
	b.logger = o.logger.With(logger.BridgeID(b.id))

	b.queue = toast.NewQueue(
		toast.WithClock(o.clock),
		toast.WithLogger(b.logger),
		toast.WithOnChange(b.publish),
		toast.WithOnAlertRemoved(func(_ toast.Alert, reason toast.RemoveReason) {
			b.metrics.AlertRemoved(string(reason))
		}),
		toast.WithOnSettled(func(c toast.Confirmation) {
			b.metrics.ConfirmationSettled(c.Settlement.String())
		}),
	)
	b.feed.Publish(b.queue.Snapshot())
	b.unsubscribe = d.Subscribe(b)

	b.logger.LogAttrs(context.Background(), slog.LevelInfo, "bridge mounted")

	return b
}

// ID identifies this mount in logs.
func (b *Bridge) ID() string {
	return b.id
}

// Alert implements notify.Sink.
func (b *Bridge) Alert(_ context.Context, spec toast.AlertSpec) error {
	if _, err := b.queue.EnqueueAlert(spec); err != nil {
		return err
	}
	b.metrics.AlertEnqueued(spec.Kind.String())
	return nil
}

// Confirm implements notify.Sink.
func (b *Bridge) Confirm(ctx context.Context, spec toast.ConfirmSpec) *async.Future[bool] {
	_, future, err := b.queue.EnqueueConfirmation(ctx, spec)
	if err != nil {
		b.logger.LogAttrs(ctx, slog.LevelDebug, "confirmation not queued", logger.Error(err))
		return future
	}
	b.metrics.ConfirmationEnqueued()
	return future
}

// Snapshot returns the current queue state.
func (b *Bridge) Snapshot() toast.Snapshot {
	return b.queue.Snapshot()
}

// RemoveAlert dismisses an alert on behalf of the user.
func (b *Bridge) RemoveAlert(id toast.ID) bool {
	return b.queue.RemoveAlert(id)
}

// SettleConfirmation answers a confirmation on behalf of the user.
func (b *Bridge) SettleConfirmation(id toast.ID, confirmed bool) bool {
	return b.queue.SettleConfirmation(id, confirmed)
}

// Subscribe streams snapshots, starting with the current one. Slow readers only
// see the newest snapshot. The channel closes on ctx cancellation or Unmount.
func (b *Bridge) Subscribe(ctx context.Context) broadcast.Subscriber[toast.Snapshot] {
	return b.feed.Subscribe(ctx)
}

// Done is closed once the bridge is unmounted.
func (b *Bridge) Done() <-chan struct{} {
	return b.unmounted
}

// Unmount unsubscribes from the dispatcher, answers pending confirmations with
// false and ends every snapshot subscription. It is idempotent.
func (b *Bridge) Unmount() {
	b.unmountOnce.Do(func() {
		b.unsubscribe()
		pending := len(b.queue.Snapshot().Confirmations)
		_ = b.queue.Close()
		_ = b.feed.Close()
		close(b.unmounted)

		b.logger.LogAttrs(context.Background(), slog.LevelInfo, "bridge unmounted",
			slog.Int("confirmations_cancelled", pending),
		)
	})
}

// publish forwards queue snapshots to the feed, dropping any that arrive out of order.
func (b *Bridge) publish(snap toast.Snapshot) {
	b.pubMu.Lock()
	defer b.pubMu.Unlock()

	if snap.Version <= b.published {
		return
	}
	b.published = snap.Version
	b.feed.Publish(snap)
}
