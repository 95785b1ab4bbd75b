package commands

import (
	"context"

	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CreateDraftRouteCommandHandler checks the driver against the directory
// and the vehicle's availability. The vehicle is not reserved until the
// route is published, so several drafts may name the same vehicle.
type CreateDraftRouteCommandHandler struct {
	uowFactory  UoWFactory
	drivers     ports.DriverDirectory
	coordinator services.RouteCoordinator
}

func NewCreateDraftRouteCommandHandler(uowFactory UoWFactory, drivers ports.DriverDirectory) CreateDraftRouteCommandHandler {
	return CreateDraftRouteCommandHandler{
		uowFactory:  uowFactory,
		drivers:     drivers,
		coordinator: services.NewRouteCoordinator(),
	}
}

func (h CreateDraftRouteCommandHandler) Handle(ctx context.Context, cmd CreateDraftRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	known, err := h.drivers.DriverExists(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !known {
		return errs.NewPreconditionError(errs.CodeDriverUnknown, "driver", cmd.DriverID().String()).
			WithField("driverId")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if err = h.coordinator.RequireAvailable(v); err != nil {
		return err
	}

	r, err := route.NewDraft(cmd.RouteID(), cmd.DriverID(), cmd.VehicleID(), cmd.ZoneID(), cmd.ScheduledDate(), now())
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
