package async

import (
	"context"
	"sync"
	"time"
)

// Future represents a value that becomes available once, at some later point.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Resolve settles a future. It reports whether this call was the one that settled it;
// every call after the first is a no-op that returns false.
type Resolve[U any] func(value U, err error) bool

// NewPromise returns a pending future and the function that settles it.
func NewPromise[U any]() (*Future[U], Resolve[U]) {
	f := &Future[U]{done: make(chan struct{})}
	return f, f.resolve
}

// Resolved returns a future that is already settled with value.
func Resolved[U any](value U) *Future[U] {
	f, resolve := NewPromise[U]()
	resolve(value, nil)
	return f
}

func (f *Future[U]) resolve(value U, err error) bool {
	settled := false
	f.once.Do(func() {
		f.result = value
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

// Await blocks until the future is settled and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for the future or for ctx, whichever comes first.
// When ctx ends first it returns the zero value and ctx.Err(); the future is not affected.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the future with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel that is closed once the future is settled.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the future is settled without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAny waits for any of the futures to settle and returns the index of that future,
// its result, and its error.
// Note: This function spawns one goroutine per future. Goroutines watching futures that
// never settle stay parked until they do.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffered so that losers never block once the winner has been read.
	done := make(chan outcome, len(futures))
	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			done <- outcome{index, result, err}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
