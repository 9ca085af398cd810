// Package toastui renders a toast source as HTML and streams it to the browser
// with Datastar.
//
// The handler exposes the host fragment, a server-sent event stream that
// patches the #toasts region on every snapshot, and the endpoints the
// rendered buttons post to:
//
//	GET  /                              host fragment
//	GET  /stream                        Datastar SSE stream
//	POST /alerts/{id}/dismiss           remove an alert
//	POST /confirmations/{id}/confirm    answer a confirmation with true
//	POST /confirmations/{id}/cancel     answer a confirmation with false
//
// Mount it under a prefix and tell it where it lives so the rendered actions
// point back at it:
//
//	r.Mount("/toasts", toastui.New(b, toastui.WithBasePath("/toasts")))
package toastui
