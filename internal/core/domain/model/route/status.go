package route

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Draft ──> Published ──> InProgress ──> Completed
//	  │           │
//	  └───────────┴──> Cancelled
//
// Composition (stops, vehicle) is mutable only in Draft. An in-progress route
// cannot be cancelled; its deliveries have to be closed one by one.
type Status int

const (
	Unknown Status = iota
	Draft
	Published
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		Published:  "published",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
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
	return s == Completed || s == Cancelled
}

func (s Status) Publish() (Status, error) {
	if s != Draft {
		return 0, notIn(s, Draft, errs.CodeRouteNotInDraft)
	}
	return Published, nil
}

func (s Status) Start() (Status, error) {
	if s != Published {
		return 0, notIn(s, Published, errs.CodeRouteNotPublished)
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, notIn(s, InProgress, errs.CodeRouteNotInProgress)
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	switch s {
	case Draft, Published:
		return Cancelled, nil
	case InProgress:
		return 0, errs.NewPreconditionError(errs.CodeRouteInProgress, "route", "").
			WithState(s.String(), "draft|published").
			WithCause(fmt.Errorf("cancel the individual deliveries instead"))
	default:
		return 0, notIn(s, Draft, errs.CodeInvalidTransition)
	}
}

func notIn(s, expected Status, code string) error {
	return errs.NewPreconditionError(code, "route", "").WithState(s.String(), expected.String())
}
