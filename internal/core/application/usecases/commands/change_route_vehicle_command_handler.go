package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

type ChangeRouteVehicleCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.RouteCoordinator
}

func NewChangeRouteVehicleCommandHandler(uowFactory UoWFactory) ChangeRouteVehicleCommandHandler {
	return ChangeRouteVehicleCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewRouteCoordinator(),
	}
}

// Handle swaps the vehicle of a draft route for an available one.
func (h ChangeRouteVehicleCommandHandler) Handle(ctx context.Context, cmd ChangeRouteVehicleCommand) error {
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

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = h.coordinator.ChangeVehicle(r, v, now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, r, routeRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
