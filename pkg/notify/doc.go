// Package notify is the call-anywhere entry point for user-facing alerts and
// confirmation prompts.
//
// A Dispatcher holds no alert state of its own. It validates each call and
// forwards it to the sinks currently subscribed, usually a single mounted
// bridge.Bridge. With no sink subscribed, alerts are dropped and logged and
// confirmations answer false immediately.
//
// Basic usage:
//
//	if err := notify.Success(ctx, "Order saved", notify.WithDuration(3*time.Second)); err != nil {
//		return err // only validation errors reach the caller
//	}
//
//	ok, err := notify.Confirm(ctx, "Delete this product?",
//		notify.WithTitle("Delete"),
//		notify.WithConfirmLabel("Delete"),
//	)
//	if err != nil || !ok {
//		return err
//	}
//
// The package-level functions use the process-wide Default dispatcher. Tests and
// applications that want isolation create their own with New.
package notify
