package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReportIncidentCommandIsNotConstructed = errors.New(
	"ReportIncidentCommand must be created via NewReportIncidentCommand constructor",
)

type ReportIncidentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	incident   *delivery.Incident

	guard guard.ConstructorGuard
}

func NewReportIncidentCommand(deliveryID kernel.UUID, incident *delivery.Incident) (ReportIncidentCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return ReportIncidentCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	if incident == nil {
		return ReportIncidentCommand{}, errs.NewValueIsRequiredError("incident")
	}

	return ReportIncidentCommand{
		deliveryID: deliveryID,
		incident:   incident,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReportIncidentCommand) Validate() error {
	return c.guard.Validate(ErrReportIncidentCommandIsNotConstructed)
}

func (c ReportIncidentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ReportIncidentCommand) Incident() *delivery.Incident {
	return c.incident
}
