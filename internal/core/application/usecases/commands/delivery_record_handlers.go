package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// AttachEvidenceCommandHandler, ReportIncidentCommandHandler and
// ResolveIncidentCommandHandler change a delivery's records without moving
// its status, so nothing outside the delivery is touched.
type AttachEvidenceCommandHandler struct {
	uowFactory UoWFactory
}

func NewAttachEvidenceCommandHandler(uowFactory UoWFactory) AttachEvidenceCommandHandler {
	return AttachEvidenceCommandHandler{uowFactory: uowFactory}
}

func (h AttachEvidenceCommandHandler) Handle(ctx context.Context, cmd AttachEvidenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return updateDelivery(ctx, h.uowFactory,
		func(ctx context.Context, repo ports.DeliveryRepository) (*delivery.Delivery, error) {
			return repo.Get(ctx, cmd.DeliveryID())
		},
		func(d *delivery.Delivery) error {
			return d.AttachEvidence(cmd.Evidence(), now())
		},
	)
}

type ReportIncidentCommandHandler struct {
	uowFactory UoWFactory
}

func NewReportIncidentCommandHandler(uowFactory UoWFactory) ReportIncidentCommandHandler {
	return ReportIncidentCommandHandler{uowFactory: uowFactory}
}

func (h ReportIncidentCommandHandler) Handle(ctx context.Context, cmd ReportIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return updateDelivery(ctx, h.uowFactory,
		func(ctx context.Context, repo ports.DeliveryRepository) (*delivery.Delivery, error) {
			return repo.Get(ctx, cmd.DeliveryID())
		},
		func(d *delivery.Delivery) error {
			return d.ReportIncident(cmd.Incident(), now())
		},
	)
}

// ResolveIncidentCommandHandler finds the delivery through the incident, so
// callers only need the incident ID.
type ResolveIncidentCommandHandler struct {
	uowFactory UoWFactory
}

func NewResolveIncidentCommandHandler(uowFactory UoWFactory) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{uowFactory: uowFactory}
}

func (h ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return updateDelivery(ctx, h.uowFactory,
		func(ctx context.Context, repo ports.DeliveryRepository) (*delivery.Delivery, error) {
			return repo.GetByIncident(ctx, cmd.IncidentID())
		},
		func(d *delivery.Delivery) error {
			return d.ResolveIncident(cmd.IncidentID(), cmd.Resolution(), now())
		},
	)
}

func updateDelivery(
	ctx context.Context,
	uowFactory UoWFactory,
	load func(context.Context, ports.DeliveryRepository) (*delivery.Delivery, error),
	change func(*delivery.Delivery) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := load(ctx, deliveryRepo)
	if err != nil {
		return err
	}

	if err = change(d); err != nil {
		return err
	}

	if err = saveIfChanged(ctx, d, deliveryRepo.Update); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
