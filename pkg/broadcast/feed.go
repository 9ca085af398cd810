package broadcast

import (
	"context"
	"sync"
)

// Feed is a latest-value broadcaster. All methods are safe for concurrent use.
type Feed[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	latest      T
	hasLatest   bool
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
	}
}

// Subscribe registers a new subscriber, primed with the latest published value.
// The subscription is removed when ctx is cancelled.
// If the feed is already closed, returns a closed subscriber.
func (f *Feed[T]) Subscribe(ctx context.Context) Subscriber[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := newSubscriber[T]()
	if f.closed {
		_ = sub.Close()
		return sub
	}

	if f.hasLatest {
		sub.offer(f.latest)
	}
	f.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		f.cleanupWg.Add(1)
		go func() {
			defer f.cleanupWg.Done()
			select {
			case <-ctx.Done():
			case <-sub.done:
			}
			f.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish records v as the latest value and offers it to every subscriber.
// It never blocks on slow readers. Publishing to a closed feed is a no-op.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.latest = v
	f.hasLatest = true

	var gone []*subscriber[T]
	for sub := range f.subscribers {
		if !sub.offer(v) {
			gone = append(gone, sub)
		}
	}
	for _, sub := range gone {
		delete(f.subscribers, sub)
	}
	f.mu.Unlock()
}

// Latest returns the most recently published value, if any.
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest, f.hasLatest
}

// Len returns the number of active subscribers.
func (f *Feed[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// Close shuts the feed down and closes all subscribers.
// It is safe to call Close multiple times.
func (f *Feed[T]) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true

	for sub := range f.subscribers {
		_ = sub.Close()
	}
	clear(f.subscribers)
	f.mu.Unlock()

	// Every subscriber is closed now, so all context watchers are on their way out.
	f.cleanupWg.Wait()
	return nil
}

func (f *Feed[T]) unsubscribe(sub *subscriber[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subscribers, sub)
	_ = sub.Close()
}
