package commands

import (
	"context"
)

type SetVehicleMaintenanceCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewSetVehicleMaintenanceCommandHandler(uowFactory VehicleUoWFactory) SetVehicleMaintenanceCommandHandler {
	return SetVehicleMaintenanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle refuses to put an assigned vehicle into maintenance: the route
// holding it must finish or be cancelled first.
func (h SetVehicleMaintenanceCommandHandler) Handle(ctx context.Context, cmd SetVehicleMaintenanceCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = v.SetMaintenance(cmd.On(), now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, v, vehicleRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
