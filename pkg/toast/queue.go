package toast

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// settle origins, used for logging only
const (
	originUser    = "user"
	originContext = "context"
	originClose   = "close"
)

// Queue is the ordered, live set of alerts and confirmation requests.
// All methods are safe for concurrent use. Hooks run outside the queue lock.
type Queue struct {
	alerts        []Alert
	confirmations []Confirmation
	timers        map[ID]clockwork.Timer
	broker        *Broker
	seq           uint64
	version       uint64
	closed        bool

	clock          clockwork.Clock
	logger         *slog.Logger
	onChange       []func(Snapshot)
	onAlertRemoved []func(Alert, RemoveReason)
	onSettled      []func(Confirmation)

	mu sync.Mutex
}

// NewQueue creates an empty queue using the real clock unless WithClock is given.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers: make(map[ID]clockwork.Timer),
		clock:  clockwork.NewRealClock(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(q)
	}

	q.logger = q.logger.With(logger.Component("toast_queue"))
	q.broker = NewBroker(q.logger)

	return q
}

// EnqueueAlert validates spec, appends a new alert and, for a positive Duration,
// schedules its removal. Invalid specs leave the queue untouched.
func (q *Queue) EnqueueAlert(spec AlertSpec) (ID, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0, ErrQueueClosed
	}

	q.seq++
	alert := Alert{
		ID:        ID(q.seq),
		Kind:      spec.Kind,
		Title:     spec.Title,
		Message:   spec.Message,
		Duration:  spec.Duration,
		Position:  spec.normalizedPosition(),
		CreatedAt: q.clock.Now(),
	}
	q.alerts = append(q.alerts, alert)

	if alert.AutoDismiss() {
		id := alert.ID
		q.timers[id] = q.clock.AfterFunc(alert.Duration, func() {
			q.removeAlert(id, ReasonExpired)
		})
	}

	snap := q.mutatedLocked()
	q.mu.Unlock()

	q.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert enqueued",
		logger.AlertID(uint64(alert.ID)),
		logger.Kind(alert.Kind.String()),
		slog.Duration("duration", alert.Duration),
	)
	q.changed(snap)

	return alert.ID, nil
}

// RemoveAlert removes the alert with id and stops its timer.
// Unknown or already removed ids are a no-op; the result reports whether anything was removed.
func (q *Queue) RemoveAlert(id ID) bool {
	return q.removeAlert(id, ReasonDismissed)
}

func (q *Queue) removeAlert(id ID, reason RemoveReason) bool {
	q.mu.Lock()
	i := slices.IndexFunc(q.alerts, func(a Alert) bool { return a.ID == id })
	if i < 0 {
		q.mu.Unlock()
		return false
	}

	alert := q.alerts[i]
	q.alerts = slices.Delete(q.alerts, i, i+1)
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}

	snap := q.mutatedLocked()
	q.mu.Unlock()

	q.logger.LogAttrs(context.Background(), slog.LevelDebug, "alert removed",
		logger.AlertID(uint64(id)),
		logger.Reason(string(reason)),
	)
	for _, fn := range q.onAlertRemoved {
		fn(alert, reason)
	}
	q.changed(snap)

	return true
}

// EnqueueConfirmation appends a pending confirmation request and returns its id and
// the future that settles with the user's answer.
//
// The request settles false if ctx ends before the user answers. Confirmations
// never expire on their own; pass a context without deadline to wait indefinitely.
//
// On a validation error or a closed queue the returned future is already settled
// to false, so callers that ignore the error never block.
func (q *Queue) EnqueueConfirmation(ctx context.Context, spec ConfirmSpec) (ID, *async.Future[bool], error) {
	if err := spec.Validate(); err != nil {
		return 0, async.Resolved(false), err
	}

	if spec.ConfirmLabel == "" {
		spec.ConfirmLabel = DefaultConfirmLabel
	}
	if spec.CancelLabel == "" {
		spec.CancelLabel = DefaultCancelLabel
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0, async.Resolved(false), ErrQueueClosed
	}

	q.seq++
	id := ID(q.seq)
	future, err := q.broker.Register(id)
	if err != nil {
		q.mu.Unlock()
		return 0, async.Resolved(false), err
	}

	q.confirmations = append(q.confirmations, Confirmation{
		ID:           id,
		Title:        spec.Title,
		Message:      spec.Message,
		ConfirmLabel: spec.ConfirmLabel,
		CancelLabel:  spec.CancelLabel,
		Settlement:   SettlementPending,
		CreatedAt:    q.clock.Now(),
	})

	snap := q.mutatedLocked()
	q.mu.Unlock()

	q.logger.LogAttrs(ctx, slog.LevelDebug, "confirmation enqueued",
		logger.ConfirmationID(uint64(id)),
	)
	q.changed(snap)

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				q.settle(id, false, originContext)
			case <-future.Done():
			}
		}()
	}

	return id, future, nil
}

// SettleConfirmation records the user's answer for id and resolves the caller's future.
// Settling an unknown or already settled id is a no-op that returns false.
func (q *Queue) SettleConfirmation(id ID, confirmed bool) bool {
	return q.settle(id, confirmed, originUser)
}

func (q *Queue) settle(id ID, confirmed bool, origin string) bool {
	q.mu.Lock()
	i := slices.IndexFunc(q.confirmations, func(c Confirmation) bool { return c.ID == id })
	if i < 0 {
		q.mu.Unlock()

		level := slog.LevelDebug
		if origin == originUser {
			level = slog.LevelWarn
		}
		q.logger.LogAttrs(context.Background(), level, "orphan settlement ignored",
			logger.ConfirmationID(uint64(id)),
			logger.Reason(origin),
		)
		return false
	}

	c := q.confirmations[i]
	q.confirmations = slices.Delete(q.confirmations, i, i+1)
	snap := q.mutatedLocked()
	q.mu.Unlock()

	c.Settlement = settlementOf(confirmed)
	q.broker.Settle(id, confirmed)

	q.logger.LogAttrs(context.Background(), slog.LevelDebug, "confirmation settled",
		logger.ConfirmationID(uint64(id)),
		slog.String("settlement", c.Settlement.String()),
		logger.Reason(origin),
	)
	for _, fn := range q.onSettled {
		fn(c)
	}
	q.changed(snap)

	return true
}

// Snapshot returns a copy of the current state, oldest entries first.
func (q *Queue) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Close tears the queue down: timers stop, alerts are dropped and every pending
// confirmation settles false. Later enqueue calls fail with ErrQueueClosed.
// Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true

	alerts := q.alerts
	confirmations := q.confirmations
	q.alerts = nil
	q.confirmations = nil
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}

	snap := q.mutatedLocked()
	q.mu.Unlock()

	for _, c := range confirmations {
		c.Settlement = SettlementCancelled
		q.broker.Settle(c.ID, false)
		for _, fn := range q.onSettled {
			fn(c)
		}
	}
	q.broker.SettleAll(false)

	for _, a := range alerts {
		for _, fn := range q.onAlertRemoved {
			fn(a, ReasonClosed)
		}
	}

	q.logger.LogAttrs(context.Background(), slog.LevelDebug, "queue closed",
		slog.Int("alerts_dropped", len(alerts)),
		slog.Int("confirmations_cancelled", len(confirmations)),
		logger.Reason(originClose),
	)
	q.changed(snap)

	return nil
}

// mutatedLocked bumps the version and returns the snapshot to hand to change hooks.
func (q *Queue) mutatedLocked() Snapshot {
	q.version++
	if len(q.onChange) == 0 {
		return Snapshot{}
	}
	return q.snapshotLocked()
}

func (q *Queue) snapshotLocked() Snapshot {
	return Snapshot{
		Version:       q.version,
		Alerts:        slices.Clone(q.alerts),
		Confirmations: slices.Clone(q.confirmations),
	}
}

func (q *Queue) changed(snap Snapshot) {
	for _, fn := range q.onChange {
		fn(snap)
	}
}
