package commands

import (
	"context"
)

// RemoveStopCommandHandler takes an order off a draft route. The order keeps
// its status and becomes eligible again.
type RemoveStopCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveStopCommandHandler(uowFactory UoWFactory) RemoveStopCommandHandler {
	return RemoveStopCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveStopCommandHandler) Handle(ctx context.Context, cmd RouteStopCommand) error {
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

	if err = r.RemoveStop(cmd.OrderID(), now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, r, routeRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
