package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeRouteVehicleCommandIsNotConstructed = errors.New(
	"ChangeRouteVehicleCommand must be created via NewChangeRouteVehicleCommand constructor",
)

type ChangeRouteVehicleCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewChangeRouteVehicleCommand(routeID, vehicleID kernel.UUID) (ChangeRouteVehicleCommand, error) {
	var errList []error
	if err := routeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("routeId", err))
	}
	if err := vehicleID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("vehicleId", err))
	}
	if len(errList) > 0 {
		return ChangeRouteVehicleCommand{}, errors.Join(errList...)
	}

	return ChangeRouteVehicleCommand{
		routeID:   routeID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRouteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteVehicleCommandIsNotConstructed)
}

func (c ChangeRouteVehicleCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c ChangeRouteVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
