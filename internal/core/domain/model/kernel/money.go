package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Money is an amount in minor currency units (cents). Order totals are
// computed in Money so that finalTotal = subtotal - discountTotal + taxTotal
// holds exactly.
type Money int64

// Validate rejects negative amounts; paramName names the offending field.
func (m Money) Validate(paramName string) error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

// Times multiplies a unit price by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
