package broadcast

import (
	"sync"
)

// Subscriber receives values from a Feed.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel values are delivered on.
	// The channel is closed when the subscription ends.
	Receive() <-chan T

	// Close ends the subscription. It is idempotent.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	done   chan struct{}
	closed bool
	mu     sync.Mutex
}

func newSubscriber[T any]() *subscriber[T] {
	return &subscriber[T]{
		ch:   make(chan T, 1),
		done: make(chan struct{}),
	}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		close(s.done)
		s.closed = true
	}
	return nil
}

// offer delivers v, replacing an undelivered older value if there is one.
// Reports false once the subscriber is closed.
func (s *subscriber[T]) offer(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
	}

	// Buffer holds a stale value; drop it. Only senders write to ch and they
	// serialize on mu, so the second send always finds room.
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
	return true
}
