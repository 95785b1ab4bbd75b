package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one requested SKU of an order. It is immutable once the order has
// entered validation; validation outcomes are kept separately as Resolutions.
type Line struct {
	id                kernel.UUID
	sku               string
	requestedQuantity int
	unitOfMeasure     string
	listPrice         kernel.Money
	finalPrice        kernel.Money

	guard guard.ConstructorGuard
}

func NewLine(
	id kernel.UUID,
	sku string,
	requestedQuantity int,
	unitOfMeasure string,
	listPrice kernel.Money,
	finalPrice kernel.Money,
) (*Line, error) {
	line := &Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setID(id),
		line.setSKU(sku),
		line.setRequestedQuantity(requestedQuantity),
		line.setUnitOfMeasure(unitOfMeasure),
		line.setPrices(listPrice, finalPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) SKU() string {
	return l.sku
}

func (l *Line) RequestedQuantity() int {
	return l.requestedQuantity
}

func (l *Line) UnitOfMeasure() string {
	return l.unitOfMeasure
}

func (l *Line) ListPrice() kernel.Money {
	return l.listPrice
}

func (l *Line) FinalPrice() kernel.Money {
	return l.finalPrice
}

// Subtotal is finalPrice × requestedQuantity.
func (l *Line) Subtotal() kernel.Money {
	return l.finalPrice.Times(l.requestedQuantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setRequestedQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestedQuantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.requestedQuantity = quantity
	return nil
}

func (l *Line) setUnitOfMeasure(uom string) error {
	if uom == "" {
		return errs.NewValueIsRequiredError("unitOfMeasure")
	}
	l.unitOfMeasure = uom
	return nil
}

func (l *Line) setPrices(listPrice, finalPrice kernel.Money) error {
	if err := errors.Join(listPrice.Validate("listPrice"), finalPrice.Validate("finalPrice")); err != nil {
		return err
	}
	l.listPrice = listPrice
	l.finalPrice = finalPrice
	return nil
}
