package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new order in pending_validation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*order.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		line, err := order.NewLine(in.LineID, in.SKU, in.Quantity, in.UnitOfMeasure, in.ListPrice, in.FinalPrice)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.SellerID(),
		cmd.ZoneID(),
		cmd.PaymentTerm(),
		lines,
		cmd.DiscountTotal(),
		cmd.TaxTotal(),
		now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
