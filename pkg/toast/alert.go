package toast

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// Length caps for display text.
const (
	MaxTitleLength   = 200
	MaxMessageLength = 2000
)

// ID identifies an alert or confirmation within one queue.
// IDs increase in creation order and are never reused by the same queue.
type ID uint64

// Kind is the alert severity.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Kinds lists every valid Kind.
var Kinds = []Kind{KindSuccess, KindError, KindWarning, KindInfo}

func (k Kind) String() string { return string(k) }

// Position is a placement hint for the renderer. The queue only carries it.
type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

// Positions lists every valid Position.
var Positions = []Position{
	PositionTopRight, PositionTopLeft, PositionTopCenter,
	PositionBottomRight, PositionBottomLeft, PositionBottomCenter,
}

// AlertSpec describes an alert to enqueue.
// A zero Duration keeps the alert until it is removed; an empty Position means PositionTopRight.
type AlertSpec struct {
	Kind     Kind
	Title    string
	Message  string
	Duration time.Duration
	Position Position
}

// Validate checks the fields and returns validator.ValidationErrors on failure.
func (s AlertSpec) Validate() error {
	return validator.Apply(
		validator.RequiredString("message", s.Message),
		validator.MaxLenString("message", s.Message, MaxMessageLength),
		validator.MaxLenString("title", s.Title, MaxTitleLength),
		validator.InList("kind", s.Kind, Kinds),
		validator.MinNum("duration", s.Duration, 0),
		validator.InList("position", s.normalizedPosition(), Positions),
	)
}

func (s AlertSpec) normalizedPosition() Position {
	if s.Position == "" {
		return PositionTopRight
	}
	return s.Position
}

// Alert is an alert record as held by the queue. Records never change after creation.
type Alert struct {
	ID        ID
	Kind      Kind
	Title     string
	Message   string
	Duration  time.Duration
	Position  Position
	CreatedAt time.Time
}

// AutoDismiss reports whether the alert removes itself after Duration.
func (a Alert) AutoDismiss() bool {
	return a.Duration > 0
}

// ExpiresAt returns when the alert is due for removal, or the zero time if it never expires.
func (a Alert) ExpiresAt() time.Time {
	if !a.AutoDismiss() {
		return time.Time{}
	}
	return a.CreatedAt.Add(a.Duration)
}

// RemoveReason tells why an alert left the queue.
type RemoveReason string

const (
	ReasonDismissed RemoveReason = "dismissed"
	ReasonExpired   RemoveReason = "expired"
	ReasonClosed    RemoveReason = "closed"
)
