package vehicle

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status of the fleet resource. Available ⇄ Assigned is driven by routes,
// Available ⇄ Maintenance by the fleet service.
type Status int

const (
	Unknown Status = iota
	Available
	Assigned
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Available:   "available",
		Assigned:    "assigned",
		Maintenance: "maintenance",
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
	if s <= Unknown || s > Maintenance {
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
