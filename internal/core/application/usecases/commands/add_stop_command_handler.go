package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// AddStopCommandHandler appends a dispatchable order to a draft route. An
// order may be held by one active stop only; the check here is backed by a
// unique index, so two concurrent attachments cannot both commit.
type AddStopCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.RouteCoordinator
}

func NewAddStopCommandHandler(uowFactory UoWFactory) AddStopCommandHandler {
	return AddStopCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewRouteCoordinator(),
	}
}

func (h AddStopCommandHandler) Handle(ctx context.Context, cmd RouteStopCommand) error {
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
	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	active, err := routeRepo.FindActiveByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.coordinator.AttachOrder(r, o, active, now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, r, routeRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
