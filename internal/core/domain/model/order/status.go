package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PendingValidation ──> Validated ──> InPreparation ──> Invoiced ──> EnRoute ──> Delivered
//	        │                 │                                           │
//	        └──> Rejected <───┘                                           │
//	                          ^───────────── returned to pool ────────────┘
//
// Any status before EnRoute may exit to Cancelled. Apart from cancellation the
// only backward move is ReturnToPool, used when a route is cancelled or a
// delivery fails so that a human can route the order again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	PendingValidation
	Validated
	Rejected
	InPreparation
	Invoiced
	EnRoute
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		PendingValidation: "pending_validation",
		Validated:         "validated",
		Rejected:          "rejected",
		InPreparation:     "in_preparation",
		Invoiced:          "invoiced",
		EnRoute:           "en_route",
		Delivered:         "delivered",
		Cancelled:         "cancelled",
	}
}

// ParseStatus converts the persisted/wire name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports statuses from which no transition is defined.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered || s == Cancelled
}

// IsDispatchable reports whether an order in this status may be put on a
// route or travel with a starting route.
func (s Status) IsDispatchable() bool {
	return s == Validated || s == InPreparation || s == Invoiced
}

// Approve moves a pending order to Validated.
func (s Status) Approve() (Status, error) {
	if s != PendingValidation {
		return 0, invalidTransition(s, "approve")
	}
	return Validated, nil
}

// Reject withdraws an order before it is in preparation.
func (s Status) Reject() (Status, error) {
	if s != PendingValidation && s != Validated {
		return 0, invalidTransition(s, "reject")
	}
	return Rejected, nil
}

func (s Status) Prepare() (Status, error) {
	if s != Validated {
		return 0, invalidTransition(s, "prepare")
	}
	return InPreparation, nil
}

func (s Status) Invoice() (Status, error) {
	if s != Validated && s != InPreparation {
		return 0, invalidTransition(s, "invoice")
	}
	return Invoiced, nil
}

// Dispatch marks the order as travelling with a started route.
func (s Status) Dispatch() (Status, error) {
	if !s.IsDispatchable() {
		return 0, invalidTransition(s, "dispatch")
	}
	return EnRoute, nil
}

func (s Status) Deliver() (Status, error) {
	if s != EnRoute {
		return 0, invalidTransition(s, "deliver")
	}
	return Delivered, nil
}

func (s Status) Cancel() (Status, error) {
	if s != PendingValidation && !s.IsDispatchable() {
		return 0, invalidTransition(s, "cancel")
	}
	return Cancelled, nil
}

// ReturnToPool resets a routed or dispatchable order to Validated.
func (s Status) ReturnToPool() (Status, error) {
	if !s.IsDispatchable() && s != EnRoute {
		return 0, invalidTransition(s, "return to pool")
	}
	return Validated, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewPreconditionError(errs.CodeInvalidTransition, "order", "").
		WithState(s.String(), action).
		WithCause(fmt.Errorf("%s is not a valid status to %s", s, action))
}
