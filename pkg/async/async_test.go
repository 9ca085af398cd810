package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/async"
)

// TestPromiseResolvesOnce checks that only the first resolve call settles the future.
func TestPromiseResolvesOnce(t *testing.T) {
	t.Parallel()

	future, resolve := async.NewPromise[string]()
	if future.IsComplete() {
		t.Fatal("Expected new promise to be pending")
	}

	if !resolve("first", nil) {
		t.Error("Expected first resolve to settle the future")
	}
	if resolve("second", errors.New("late")) {
		t.Error("Expected second resolve to be a no-op")
	}

	result, err := future.Await()
	if err != nil || result != "first" {
		t.Errorf("Expected 'first' without error, got '%s', error: %v", result, err)
	}
}

// TestPromiseConcurrentResolve races many resolvers against each other.
func TestPromiseConcurrentResolve(t *testing.T) {
	t.Parallel()

	future, resolve := async.NewPromise[int]()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		start = make(chan struct{})
	)
	for i := range 50 {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			<-start
			if resolve(v, nil) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()

	if wins != 1 {
		t.Errorf("Expected exactly one winning resolve, got %d", wins)
	}
	if !future.IsComplete() {
		t.Error("Expected future to be complete")
	}
}

func TestResolved(t *testing.T) {
	t.Parallel()

	future := async.Resolved(false)
	select {
	case <-future.Done():
	default:
		t.Fatal("Expected resolved future to be done immediately")
	}

	ok, err := future.Await()
	if ok || err != nil {
		t.Errorf("Expected false without error, got %v, error: %v", ok, err)
	}
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()

	future, resolve := async.NewPromise[bool]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := future.AwaitContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if future.IsComplete() {
		t.Error("Expected context cancellation to leave the future pending")
	}

	resolve(true, nil)
	ok, err := future.AwaitContext(context.Background())
	if !ok || err != nil {
		t.Errorf("Expected true without error, got %v, error: %v", ok, err)
	}
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	future, resolve := async.NewPromise[int]()

	if _, err := future.AwaitWithTimeout(20 * time.Millisecond); !errors.Is(err, async.ErrTimeout) {
		t.Errorf("Expected ErrTimeout, got: %v", err)
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		resolve(7, nil)
	}()

	result, err := future.AwaitWithTimeout(time.Second)
	if err != nil || result != 7 {
		t.Errorf("Expected 7 without error, got %d, error: %v", result, err)
	}
}

// TestWaitAny checks that the first settled future wins.
func TestWaitAny(t *testing.T) {
	t.Parallel()

	slow, _ := async.NewPromise[string]()
	fast, resolveFast := async.NewPromise[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		resolveFast("fast", nil)
	}()

	index, result, err := async.WaitAny(slow, fast)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if index != 1 || result != "fast" {
		t.Errorf("Expected index 1 with 'fast', got %d with '%s'", index, result)
	}
}

// TestWaitAnyAlreadySettled guards against losing a result that was ready before WaitAny started listening.
func TestWaitAnyAlreadySettled(t *testing.T) {
	t.Parallel()

	pending, _ := async.NewPromise[bool]()
	done := async.Resolved(true)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		index, result, err := async.WaitAny(pending, done)
		if err != nil || index != 1 || !result {
			t.Errorf("Expected index 1 with true, got %d with %v, error: %v", index, result, err)
		}
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("WaitAny did not return for an already settled future")
	}
}

func TestWaitAnyEmpty(t *testing.T) {
	t.Parallel()

	index, _, err := async.WaitAny[int]()
	if index != -1 || !errors.Is(err, async.ErrNoFutures) {
		t.Errorf("Expected -1 and ErrNoFutures, got %d, error: %v", index, err)
	}
}
