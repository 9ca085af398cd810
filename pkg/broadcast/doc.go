// Package broadcast provides a type-safe, latest-value broadcaster.
//
// A Feed fans every published value out to all current subscribers. It is meant for
// state snapshots, where only the newest value matters: each subscriber holds at most
// one undelivered value, and publishing over an unread value replaces it. Publish
// therefore never blocks, and a slow reader skips straight to the current state.
//
// New subscribers receive the most recent value immediately, so a renderer that
// attaches late still starts from the current state.
//
// Basic usage:
//
//	feed := broadcast.NewFeed[Snapshot]()
//	defer feed.Close()
//
//	sub := feed.Subscribe(ctx)
//	defer sub.Close()
//
//	feed.Publish(snapshot)
//
//	for s := range sub.Receive() {
//		render(s)
//	}
//
// Subscriptions end when the subscribe context is cancelled, when the subscriber is
// closed, or when the feed is closed; in every case the receive channel is closed.
package broadcast
