package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ChangeRouteStatusCommandHandler drives a route through its lifecycle.
// Each action loads what the coordinator needs and saves whatever changed,
// all in one transaction:
//   - publish reserves the vehicle with the approved units of the stops
//   - start creates the deliveries and puts the orders en route
//   - complete frees the vehicle once every delivery is terminal
//   - cancel frees the vehicle and returns the orders to the pool
type ChangeRouteStatusCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.RouteCoordinator
}

func NewChangeRouteStatusCommandHandler(uowFactory UoWFactory) ChangeRouteStatusCommandHandler {
	return ChangeRouteStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewRouteCoordinator(),
	}
}

func (h ChangeRouteStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRouteStatusCommand) error {
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

	r, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	at := now()
	switch cmd.Action() {
	case RouteActionPublish:
		err = h.publish(ctx, uow, r, at)
	case RouteActionStart:
		err = h.start(ctx, uow, r, at)
	case RouteActionComplete:
		err = h.complete(ctx, uow, r, at)
	case RouteActionCancel:
		err = h.cancel(ctx, uow, r, cmd.Reason(), at)
	}
	if err != nil {
		return err
	}

	if err = saveIfChanged(ctx, r, uow.RouteRepository().Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeRouteStatusCommandHandler) publish(ctx context.Context, uow UoW, r *route.Route, at time.Time) error {
	if r.Status() == route.Published {
		return nil
	}

	v, err := uow.VehicleRepository().Get(ctx, r.VehicleID())
	if err != nil {
		return err
	}
	orders, err := uow.OrderRepository().GetMany(ctx, r.OrderIDs())
	if err != nil {
		return err
	}

	if err = h.coordinator.PublishRoute(r, v, orders, at); err != nil {
		return err
	}
	return saveIfChanged(ctx, v, uow.VehicleRepository().Update)
}

func (h ChangeRouteStatusCommandHandler) start(ctx context.Context, uow UoW, r *route.Route, at time.Time) error {
	orders, err := uow.OrderRepository().GetMany(ctx, r.OrderIDs())
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	deliveries, err := h.coordinator.StartRoute(r, byID, at)
	if err != nil {
		return err
	}

	for _, d := range deliveries {
		if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
			return err
		}
	}
	return saveOrders(ctx, uow.OrderRepository(), orders)
}

func (h ChangeRouteStatusCommandHandler) complete(ctx context.Context, uow UoW, r *route.Route, at time.Time) error {
	if r.Status() == route.Completed {
		return nil
	}

	v, err := uow.VehicleRepository().Get(ctx, r.VehicleID())
	if err != nil {
		return err
	}
	deliveries, err := uow.DeliveryRepository().GetByRoute(ctx, r.ID())
	if err != nil {
		return err
	}

	if err = h.coordinator.CompleteRoute(r, v, deliveries, at); err != nil {
		return err
	}
	return saveIfChanged(ctx, v, uow.VehicleRepository().Update)
}

func (h ChangeRouteStatusCommandHandler) cancel(ctx context.Context, uow UoW, r *route.Route, reason string, at time.Time) error {
	if r.Status() == route.Cancelled {
		return nil
	}

	orders, err := uow.OrderRepository().GetMany(ctx, r.OrderIDs())
	if err != nil {
		return err
	}
	v, err := uow.VehicleRepository().Get(ctx, r.VehicleID())
	if err != nil {
		return err
	}

	if err = h.coordinator.CancelRoute(r, v, orders, reason, at); err != nil {
		return err
	}
	if err = saveOrders(ctx, uow.OrderRepository(), orders); err != nil {
		return err
	}
	return saveIfChanged(ctx, v, uow.VehicleRepository().Update)
}

func saveOrders(ctx context.Context, repo ports.OrderRepository, orders []*order.Order) error {
	for _, o := range orders {
		if err := saveIfChanged(ctx, o, repo.Update); err != nil {
			return err
		}
	}
	return nil
}
