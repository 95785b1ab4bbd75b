package vehicle

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Load is the cargo of one order carried by a reserved vehicle.
type Load struct {
	OrderID kernel.UUID
	Units   int
}

func NewLoad(orderID kernel.UUID, units int) (Load, error) {
	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if units < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("units", fmt.Errorf("%d is negative", units)))
	}
	if len(errList) > 0 {
		return Load{}, errors.Join(errList...)
	}
	return Load{OrderID: orderID, Units: units}, nil
}

func totalUnits(loads []Load) int {
	total := 0
	for _, l := range loads {
		total += l.Units
	}
	return total
}
