package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status of one stop's execution.
//
//	Pending ──> EnRoute ──> DeliveredComplete | DeliveredPartial | Failed
//	   │           │
//	   └───────────┴──> Cancelled
type Status int

const (
	Unknown Status = iota
	Pending
	EnRoute
	DeliveredComplete
	DeliveredPartial
	Failed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		EnRoute:           "en_route",
		DeliveredComplete: "delivered_complete",
		DeliveredPartial:  "delivered_partial",
		Failed:            "failed",
		Cancelled:         "cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

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

func (s Status) IsTerminal() bool {
	return s == DeliveredComplete || s == DeliveredPartial || s == Failed || s == Cancelled
}

// IsDelivered reports whether goods reached the customer.
func (s Status) IsDelivered() bool {
	return s == DeliveredComplete || s == DeliveredPartial
}
