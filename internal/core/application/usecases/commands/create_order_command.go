package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineInput is one line of an order snapshot as the order service sends
// it. Prices are in minor currency units.
type OrderLineInput struct {
	LineID        kernel.UUID
	SKU           string
	Quantity      int
	UnitOfMeasure string
	ListPrice     kernel.Money
	FinalPrice    kernel.Money
}

// CreateOrderCommand ingests an order snapshot for validation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, clientID, sellerID, "north", "net30",
//	    []OrderLineInput{{LineID: kernel.NewUUID(), SKU: "SKU-1", Quantity: 4,
//	        UnitOfMeasure: "box", ListPrice: 1000, FinalPrice: 900}},
//	    0, 0)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientID      kernel.UUID
	sellerID      kernel.UUID
	zoneID        string
	paymentTerm   string
	lines         []OrderLineInput
	discountTotal kernel.Money
	taxTotal      kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the envelope of the snapshot. Line contents
// are checked by the Order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	sellerID kernel.UUID,
	zoneID string,
	paymentTerm string,
	lines []OrderLineInput,
	discountTotal kernel.Money,
	taxTotal kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		zoneID:        zoneID,
		paymentTerm:   paymentTerm,
		discountTotal: discountTotal,
		taxTotal:      taxTotal,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(clientID, sellerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c CreateOrderCommand) ZoneID() string {
	return c.zoneID
}

func (c CreateOrderCommand) PaymentTerm() string {
	return c.paymentTerm
}

func (c CreateOrderCommand) Lines() []OrderLineInput {
	return append([]OrderLineInput(nil), c.lines...)
}

func (c CreateOrderCommand) DiscountTotal() kernel.Money {
	return c.discountTotal
}

func (c CreateOrderCommand) TaxTotal() kernel.Money {
	return c.taxTotal
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(clientID, sellerID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}

	c.clientID = clientID
	c.sellerID = sellerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = append([]OrderLineInput(nil), lines...)
	return nil
}
