package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil or empty, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil || id == "" {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AlertID records an alert identifier under the key "alert_id".
func AlertID(id uint64) slog.Attr {
	return slog.Uint64("alert_id", id)
}

// ConfirmationID records a confirmation identifier under the key "confirmation_id".
func ConfirmationID(id uint64) slog.Attr {
	return slog.Uint64("confirmation_id", id)
}

// SinkID records a dispatcher sink registration under the key "sink_id".
func SinkID(id string) slog.Attr {
	return slog.String("sink_id", id)
}

// BridgeID records a bridge mount identifier under the key "bridge_id".
func BridgeID(id string) slog.Attr {
	return slog.String("bridge_id", id)
}

// Kind records an alert kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Reason records why something happened under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Sinks records a sink count under the key "sinks".
func Sinks(n int) slog.Attr {
	return slog.Int("sinks", n)
}
