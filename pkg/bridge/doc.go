// Package bridge connects a notify.Dispatcher to a live toast.Queue owned by a
// mounted UI root.
//
// Mount creates the queue and subscribes it to the dispatcher. Renderers read
// state through Snapshot or Subscribe and send user gestures back through
// RemoveAlert and SettleConfirmation. Unmount unsubscribes, drops the queue and
// answers every pending confirmation with false so no caller waits forever.
//
//	b := bridge.Mount(notify.Default(), bridge.WithLogger(log))
//	defer b.Unmount()
//
//	sub := b.Subscribe(ctx)
//	for snap := range sub.Receive() {
//		render(snap)
//	}
package bridge
