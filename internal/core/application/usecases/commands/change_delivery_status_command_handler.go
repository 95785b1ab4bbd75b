package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ChangeDeliveryStatusCommandHandler records the outcome of a stop. When the
// delivery reaches a terminal status the order, the route stop and the
// vehicle follow in the same transaction. Repeating a terminal action is a
// no-op and touches nothing else.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.RouteCoordinator
}

func NewChangeDeliveryStatusCommandHandler(uowFactory UoWFactory) ChangeDeliveryStatusCommandHandler {
	return ChangeDeliveryStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewRouteCoordinator(),
	}
}

func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	at := now()
	before := d.Status()

	var o *order.Order
	if cmd.Action() == DeliveryActionCompletePartial && before != delivery.DeliveredPartial {
		if o, err = uow.OrderRepository().Get(ctx, d.OrderID()); err != nil {
			return err
		}
		if err = h.coordinator.CheckDeliveredLines(o, cmd.Lines()); err != nil {
			return err
		}
	}

	if err = applyDeliveryAction(d, cmd, at); err != nil {
		return err
	}

	if d.Status() != before && d.Status().IsTerminal() {
		if err = h.propagate(ctx, uow, d, o, at); err != nil {
			return err
		}
	}

	if err = saveIfChanged(ctx, d, deliveryRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeDeliveryStatusCommandHandler) propagate(
	ctx context.Context,
	uow UoW,
	d *delivery.Delivery,
	o *order.Order,
	at time.Time,
) error {
	var err error
	if o == nil {
		if o, err = uow.OrderRepository().Get(ctx, d.OrderID()); err != nil {
			return err
		}
	}
	r, err := uow.RouteRepository().Get(ctx, d.RouteID())
	if err != nil {
		return err
	}
	v, err := uow.VehicleRepository().Get(ctx, r.VehicleID())
	if err != nil {
		return err
	}

	if err = h.coordinator.ApplyDeliveryOutcome(d, r, o, v, at); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, o, uow.OrderRepository().Update); err != nil {
		return err
	}
	if err = saveIfChanged(ctx, r, uow.RouteRepository().Update); err != nil {
		return err
	}
	return saveIfChanged(ctx, v, uow.VehicleRepository().Update)
}

func applyDeliveryAction(d *delivery.Delivery, cmd ChangeDeliveryStatusCommand, at time.Time) error {
	switch cmd.Action() {
	case DeliveryActionDepart:
		return d.Depart(at)
	case DeliveryActionComplete:
		return d.CompleteFull(cmd.Observations(), at)
	case DeliveryActionCompletePartial:
		return d.CompletePartial(cmd.Lines(), cmd.Observations(), at)
	case DeliveryActionFail:
		return d.Fail(cmd.Reason(), cmd.Observations(), at)
	case DeliveryActionCancel:
		return d.Cancel(cmd.Reason(), at)
	}
	return nil
}
