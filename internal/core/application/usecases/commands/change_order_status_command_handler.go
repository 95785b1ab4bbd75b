package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the action. Repeating an action that already succeeded is
// a no-op.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = applyOrderAction(o, cmd, now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, o, orderRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyOrderAction(o *order.Order, cmd ChangeOrderStatusCommand, at time.Time) error {
	switch cmd.Action() {
	case OrderActionReject:
		return o.Reject(cmd.Reason(), at)
	case OrderActionCancel:
		return o.Cancel(cmd.Reason(), at)
	case OrderActionPrepare:
		return o.MarkInPreparation(at)
	case OrderActionInvoice:
		return o.MarkInvoiced(at)
	}
	return nil
}
