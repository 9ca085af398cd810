// Package toast holds the live state behind transient alerts and yes/no confirmations.
//
// A Queue keeps two ordered lists: alerts (success, error, warning and info
// messages, optionally dismissed automatically after a duration) and confirmation
// requests that block a caller until the user answers. The queue does no
// rendering. A renderer reads Snapshot, is told about changes through the
// WithOnChange hook, and reports user gestures back through RemoveAlert and
// SettleConfirmation.
//
// # Confirmations
//
// EnqueueConfirmation returns an *async.Future[bool]. The future settles exactly
// once: true when the user confirms, false when the user cancels, when the context
// passed to EnqueueConfirmation ends, or when the queue is closed. The pairing of
// request ids to resolvers is kept by a Broker, which deletes the pairing before
// invoking the resolver, so racing settlements (a click, a context cancellation and
// a Close arriving together) resolve the future once and the rest are no-ops.
//
// # Timers
//
// Auto-dismiss timers are scheduled on a clockwork.Clock, which tests replace with
// a fake clock. Removing an alert stops its timer, and a timer firing for an alert
// that is already gone does nothing.
//
// # Usage
//
//	q := toast.NewQueue(toast.WithOnChange(render))
//	defer q.Close()
//
//	id, err := q.EnqueueAlert(toast.AlertSpec{
//	    Kind:     toast.KindSuccess,
//	    Message:  "Saved",
//	    Duration: 3 * time.Second,
//	})
//
//	_, answer, err := q.EnqueueConfirmation(ctx, toast.ConfirmSpec{Message: "Delete item?"})
//	ok, _ := answer.Await()
package toast
