// Package async provides a small generic Future type for values that are produced
// later, usually by an event that happens outside the caller's control.
//
// A Future is created either already settled with Resolved, or pending together with
// its resolver via NewPromise. The resolver may be called any number of times from any
// goroutine; only the first call has an effect. Callers wait with Await, AwaitContext or
// AwaitWithTimeout, select on Done, or poll with IsComplete.
//
// # Usage
//
//	future, resolve := async.NewPromise[bool]()
//
//	go func() {
//	    // some UI gesture arrives much later
//	    resolve(true, nil)
//	}()
//
//	ok, err := future.Await()
//
// WaitAny returns the first of several futures to settle, which is how a fan-out
// to several listeners picks a winner.
//
// # Error Handling
//
// A Future carries whatever error its resolver supplied. AwaitWithTimeout returns
// ErrTimeout and AwaitContext returns the context error when the wait ends first; in
// both cases the future itself stays pending and can still be awaited later.
package async
