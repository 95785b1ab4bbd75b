package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrResolveIncidentCommandIsNotConstructed = errors.New(
	"ResolveIncidentCommand must be created via NewResolveIncidentCommand constructor",
)

type ResolveIncidentCommand struct { //nolint:recvcheck //using for validation
	incidentID kernel.UUID
	resolution string

	guard guard.ConstructorGuard
}

func NewResolveIncidentCommand(incidentID kernel.UUID, resolution string) (ResolveIncidentCommand, error) {
	var errList []error
	if err := incidentID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("incidentId", err))
	}
	if resolution == "" {
		errList = append(errList, errs.NewValueIsRequiredError("resolution"))
	}
	if len(errList) > 0 {
		return ResolveIncidentCommand{}, errors.Join(errList...)
	}

	return ResolveIncidentCommand{
		incidentID: incidentID,
		resolution: resolution,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveIncidentCommand) Validate() error {
	return c.guard.Validate(ErrResolveIncidentCommandIsNotConstructed)
}

func (c ResolveIncidentCommand) IncidentID() kernel.UUID {
	return c.incidentID
}

func (c ResolveIncidentCommand) Resolution() string {
	return c.resolution
}
