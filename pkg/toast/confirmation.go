package toast

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// MaxLabelLength caps confirm and cancel button labels.
const MaxLabelLength = 64

// Default button labels used when a ConfirmSpec leaves them empty.
const (
	DefaultConfirmLabel = "Confirm"
	DefaultCancelLabel  = "Cancel"
)

// Settlement is the state of a confirmation request.
type Settlement int

const (
	SettlementPending Settlement = iota
	SettlementConfirmed
	SettlementCancelled
)

func (s Settlement) String() string {
	switch s {
	case SettlementConfirmed:
		return "confirmed"
	case SettlementCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

func settlementOf(confirmed bool) Settlement {
	if confirmed {
		return SettlementConfirmed
	}
	return SettlementCancelled
}

// ConfirmSpec describes a yes/no question to put to the user.
type ConfirmSpec struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
}

// Validate checks the fields and returns validator.ValidationErrors on failure.
func (s ConfirmSpec) Validate() error {
	return validator.Apply(
		validator.RequiredString("message", s.Message),
		validator.MaxLenString("message", s.Message, MaxMessageLength),
		validator.MaxLenString("title", s.Title, MaxTitleLength),
		validator.MaxLenString("confirm_label", s.ConfirmLabel, MaxLabelLength),
		validator.MaxLenString("cancel_label", s.CancelLabel, MaxLabelLength),
	)
}

// Confirmation is a confirmation request as exposed to renderers.
// Requests in a snapshot are always pending; settled requests leave the queue.
type Confirmation struct {
	ID           ID
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Settlement   Settlement
	CreatedAt    time.Time
}
