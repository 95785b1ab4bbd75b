package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ValidateOrderCommandHandler resolves an order in pending_validation.
// Substitute SKUs are checked against the catalog before anything changes;
// if the catalog cannot answer, the order is left untouched.
type ValidateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogClient
	engine     services.ValidationEngine
}

func NewValidateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.CatalogClient) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		engine:     services.NewValidationEngine(),
	}
}

func (h ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
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
	if err = h.engine.Admit(o); err != nil {
		return err
	}

	results := cmd.Results()
	active := map[string]bool{}
	if skus := h.engine.SubstituteSKUs(results); len(skus) > 0 {
		active, err = h.catalog.ActiveSKUs(ctx, skus)
		if err != nil {
			if !errors.Is(err, errs.ErrDependencyUnavailable) {
				err = errs.NewDependencyUnavailableError("catalog", err)
			}
			return err
		}
	}

	resolutions, err := h.engine.Validate(o, results, active)
	if err != nil {
		return err
	}
	if err = o.ApplyValidation(resolutions, now()); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, o, orderRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
