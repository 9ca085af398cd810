package toast_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/async"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

func newQueue(t *testing.T, opts ...toast.Option) (*toast.Queue, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	q := toast.NewQueue(append([]toast.Option{
		toast.WithClock(clock),
		toast.WithLogger(logger.Discard()),
	}, opts...)...)
	t.Cleanup(func() { _ = q.Close() })
	return q, clock
}

func awaitBool(t *testing.T, f *async.Future[bool]) bool {
	t.Helper()
	v, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	return v
}

func TestQueue_EnqueueAlert(t *testing.T) {
	q, clock := newQueue(t)

	id, err := q.EnqueueAlert(toast.AlertSpec{
		Kind:    toast.KindSuccess,
		Title:   "Cart",
		Message: "Item added",
	})
	require.NoError(t, err)

	snap := q.Snapshot()
	require.Len(t, snap.Alerts, 1)

	alert := snap.Alerts[0]
	assert.Equal(t, id, alert.ID)
	assert.Equal(t, toast.KindSuccess, alert.Kind)
	assert.Equal(t, "Cart", alert.Title)
	assert.Equal(t, "Item added", alert.Message)
	assert.Equal(t, toast.PositionTopRight, alert.Position)
	assert.Equal(t, clock.Now(), alert.CreatedAt)
	assert.False(t, alert.AutoDismiss())
	assert.True(t, alert.ExpiresAt().IsZero())
}

func TestQueue_RemoveAlertIsIdempotent(t *testing.T) {
	q, _ := newQueue(t)

	id, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "Hello"})
	require.NoError(t, err)

	assert.True(t, q.RemoveAlert(id))
	assert.Empty(t, q.Snapshot().Alerts)

	assert.False(t, q.RemoveAlert(id))
	assert.False(t, q.RemoveAlert(12345))
	assert.Empty(t, q.Snapshot().Alerts)
}

func TestQueue_InsertionOrderAndMonotonicIDs(t *testing.T) {
	q, _ := newQueue(t)

	var ids []toast.ID
	for i, kind := range toast.Kinds {
		id, err := q.EnqueueAlert(toast.AlertSpec{Kind: kind, Message: fmt.Sprintf("alert %d", i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	confirmID, _, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "Sure?"})
	require.NoError(t, err)

	snap := q.Snapshot()
	require.Len(t, snap.Alerts, len(toast.Kinds))
	for i, alert := range snap.Alerts {
		assert.Equal(t, ids[i], alert.ID)
		assert.Equal(t, fmt.Sprintf("alert %d", i), alert.Message)
		if i > 0 {
			assert.Greater(t, alert.ID, snap.Alerts[i-1].ID)
		}
	}
	assert.Greater(t, confirmID, ids[len(ids)-1])
}

func TestQueue_AutoDismiss(t *testing.T) {
	q, clock := newQueue(t)

	_, err := q.EnqueueAlert(toast.AlertSpec{
		Kind:     toast.KindSuccess,
		Message:  "Saved",
		Duration: 3000 * time.Millisecond,
	})
	require.NoError(t, err)
	require.Len(t, q.Snapshot().Alerts, 1)

	clock.Advance(2999 * time.Millisecond)
	assert.Len(t, q.Snapshot().Alerts, 1)

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(q.Snapshot().Alerts) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestQueue_IndependentTimers(t *testing.T) {
	q, clock := newQueue(t)

	short, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "short", Duration: time.Second})
	require.NoError(t, err)
	sticky, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindError, Message: "sticky"})
	require.NoError(t, err)
	long, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindWarning, Message: "long", Duration: 5 * time.Second})
	require.NoError(t, err)

	clock.Advance(time.Second)
	assert.Eventually(t, func() bool {
		_, ok := q.Snapshot().Alert(short)
		return !ok
	}, time.Second, 5*time.Millisecond)

	snap := q.Snapshot()
	_, ok := snap.Alert(sticky)
	assert.True(t, ok)
	_, ok = snap.Alert(long)
	assert.True(t, ok)

	clock.Advance(time.Hour)
	assert.Eventually(t, func() bool {
		_, ok := q.Snapshot().Alert(long)
		return !ok
	}, time.Second, 5*time.Millisecond)

	_, ok = q.Snapshot().Alert(sticky)
	assert.True(t, ok, "alerts without duration never expire")
}

func TestQueue_ManualDismissStopsTimer(t *testing.T) {
	var (
		mu      sync.Mutex
		reasons []toast.RemoveReason
	)
	q, clock := newQueue(t, toast.WithOnAlertRemoved(func(_ toast.Alert, r toast.RemoveReason) {
		mu.Lock()
		reasons = append(reasons, r)
		mu.Unlock()
	}))

	id, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "bye", Duration: time.Second})
	require.NoError(t, err)

	require.True(t, q.RemoveAlert(id))
	clock.Advance(2 * time.Second)

	// A late timer would record a second removal.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []toast.RemoveReason{toast.ReasonDismissed}, reasons)
}

func TestQueue_ValidationFailsFast(t *testing.T) {
	tests := []struct {
		name  string
		spec  toast.AlertSpec
		field string
	}{
		{name: "empty message", spec: toast.AlertSpec{Kind: toast.KindSuccess, Message: ""}, field: "message"},
		{name: "blank message", spec: toast.AlertSpec{Kind: toast.KindSuccess, Message: "   "}, field: "message"},
		{name: "unknown kind", spec: toast.AlertSpec{Kind: "fatal", Message: "x"}, field: "kind"},
		{name: "missing kind", spec: toast.AlertSpec{Message: "x"}, field: "kind"},
		{name: "negative duration", spec: toast.AlertSpec{Kind: toast.KindInfo, Message: "x", Duration: -time.Second}, field: "duration"},
		{name: "unknown position", spec: toast.AlertSpec{Kind: toast.KindInfo, Message: "x", Position: "middle"}, field: "position"},
		{
			name:  "title too long",
			spec:  toast.AlertSpec{Kind: toast.KindInfo, Message: "x", Title: string(make([]byte, toast.MaxTitleLength+1))},
			field: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newQueue(t)
			before := q.Snapshot()

			id, err := q.EnqueueAlert(tt.spec)
			require.Error(t, err)
			assert.Zero(t, id)
			assert.True(t, toast.IsValidationError(err))
			assert.True(t, validator.ExtractValidationErrors(err).Has(tt.field))

			assert.Equal(t, before, q.Snapshot(), "queue must be unchanged")
		})
	}
}

func TestQueue_ConfirmationSettle(t *testing.T) {
	q, _ := newQueue(t)

	id, answer, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "Delete item?"})
	require.NoError(t, err)

	snap := q.Snapshot()
	require.Len(t, snap.Confirmations, 1)
	c := snap.Confirmations[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Delete item?", c.Message)
	assert.Equal(t, toast.DefaultConfirmLabel, c.ConfirmLabel)
	assert.Equal(t, toast.DefaultCancelLabel, c.CancelLabel)
	assert.Equal(t, toast.SettlementPending, c.Settlement)
	assert.False(t, answer.IsComplete())

	require.True(t, q.SettleConfirmation(id, true))
	assert.True(t, awaitBool(t, answer))
	assert.Empty(t, q.Snapshot().Confirmations)

	// Re-settling has no observable effect.
	assert.False(t, q.SettleConfirmation(id, false))
	assert.True(t, awaitBool(t, answer))
}

func TestQueue_ConfirmationCustomLabels(t *testing.T) {
	q, _ := newQueue(t)

	_, _, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{
		Title:        "Remove address",
		Message:      "This cannot be undone",
		ConfirmLabel: "Remove",
		CancelLabel:  "Keep",
	})
	require.NoError(t, err)

	c := q.Snapshot().Confirmations[0]
	assert.Equal(t, "Remove address", c.Title)
	assert.Equal(t, "Remove", c.ConfirmLabel)
	assert.Equal(t, "Keep", c.CancelLabel)
}

func TestQueue_ConfirmationValidation(t *testing.T) {
	q, _ := newQueue(t)

	_, answer, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: ""})
	require.Error(t, err)
	assert.True(t, toast.IsValidationError(err))
	require.NotNil(t, answer)
	assert.False(t, awaitBool(t, answer))
	assert.Empty(t, q.Snapshot().Confirmations)
}

func TestQueue_ConcurrentConfirmationsSettleIndependently(t *testing.T) {
	q, _ := newQueue(t)

	const n = 25
	ids := make([]toast.ID, n)
	answers := make([]*async.Future[bool], n)
	want := make(map[toast.ID]bool, n)

	for i := range n {
		id, answer, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: fmt.Sprintf("q%d", i)})
		require.NoError(t, err)
		ids[i], answers[i] = id, answer
		want[id] = i%3 == 0
	}

	order := rand.Perm(n)
	var wg sync.WaitGroup
	for _, i := range order {
		wg.Add(1)
		go func(id toast.ID) {
			defer wg.Done()
			q.SettleConfirmation(id, want[id])
		}(ids[i])
	}
	wg.Wait()

	for i, answer := range answers {
		assert.Equal(t, want[ids[i]], awaitBool(t, answer), "confirmation %d", ids[i])
	}
	assert.Empty(t, q.Snapshot().Confirmations)
}

func TestQueue_ConfirmationsDoNotExpire(t *testing.T) {
	q, clock := newQueue(t)

	_, answer, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "Checkout?"})
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	time.Sleep(10 * time.Millisecond)

	assert.False(t, answer.IsComplete())
	assert.Len(t, q.Snapshot().Confirmations, 1)
}

func TestQueue_ConfirmationContextCancel(t *testing.T) {
	var (
		mu      sync.Mutex
		settled []toast.Confirmation
	)
	q, _ := newQueue(t, toast.WithOnSettled(func(c toast.Confirmation) {
		mu.Lock()
		settled = append(settled, c)
		mu.Unlock()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	id, answer, err := q.EnqueueConfirmation(ctx, toast.ConfirmSpec{Message: "Leave page?"})
	require.NoError(t, err)

	cancel()
	assert.False(t, awaitBool(t, answer))
	assert.Eventually(t, func() bool { return len(q.Snapshot().Confirmations) == 0 }, time.Second, 5*time.Millisecond)

	assert.False(t, q.SettleConfirmation(id, true))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, settled, 1)
	assert.Equal(t, toast.SettlementCancelled, settled[0].Settlement)
}

func TestQueue_Close(t *testing.T) {
	var (
		mu       sync.Mutex
		settled  []toast.Confirmation
		removed  []toast.RemoveReason
		versions []uint64
	)
	q, clock := newQueue(t,
		toast.WithOnSettled(func(c toast.Confirmation) {
			mu.Lock()
			settled = append(settled, c)
			mu.Unlock()
		}),
		toast.WithOnAlertRemoved(func(_ toast.Alert, r toast.RemoveReason) {
			mu.Lock()
			removed = append(removed, r)
			mu.Unlock()
		}),
		toast.WithOnChange(func(s toast.Snapshot) {
			mu.Lock()
			versions = append(versions, s.Version)
			mu.Unlock()
		}),
	)

	_, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "timed", Duration: time.Second})
	require.NoError(t, err)
	_, first, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "one"})
	require.NoError(t, err)
	_, second, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "two"})
	require.NoError(t, err)

	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
	assert.True(t, q.Closed())

	assert.False(t, awaitBool(t, first))
	assert.False(t, awaitBool(t, second))
	assert.True(t, q.Snapshot().Empty())

	clock.Advance(time.Minute)
	time.Sleep(10 * time.Millisecond)

	mu.Lock()
	assert.Len(t, settled, 2)
	assert.Equal(t, []toast.RemoveReason{toast.ReasonClosed}, removed)
	assert.Len(t, versions, 4)
	assert.IsIncreasing(t, versions)
	mu.Unlock()

	_, err = q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "late"})
	assert.ErrorIs(t, err, toast.ErrQueueClosed)

	_, late, err := q.EnqueueConfirmation(context.Background(), toast.ConfirmSpec{Message: "late"})
	assert.ErrorIs(t, err, toast.ErrQueueClosed)
	assert.False(t, awaitBool(t, late))
}

func TestQueue_OnChangeSnapshots(t *testing.T) {
	var (
		mu    sync.Mutex
		snaps []toast.Snapshot
	)
	q, _ := newQueue(t, toast.WithOnChange(func(s toast.Snapshot) {
		mu.Lock()
		snaps = append(snaps, s)
		mu.Unlock()
	}))

	id, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindWarning, Message: "Low stock"})
	require.NoError(t, err)
	q.RemoveAlert(id)
	q.RemoveAlert(id)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snaps, 2, "no-op removal must not notify")
	assert.Len(t, snaps[0].Alerts, 1)
	assert.Empty(t, snaps[1].Alerts)
	assert.Less(t, snaps[0].Version, snaps[1].Version)
}

func TestQueue_SnapshotIsACopy(t *testing.T) {
	q, _ := newQueue(t)

	_, err := q.EnqueueAlert(toast.AlertSpec{Kind: toast.KindInfo, Message: "original"})
	require.NoError(t, err)

	snap := q.Snapshot()
	snap.Alerts[0].Message = "tampered"

	assert.Equal(t, "original", q.Snapshot().Alerts[0].Message)
}
