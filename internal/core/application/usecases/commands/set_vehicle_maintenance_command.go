package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetVehicleMaintenanceCommandIsNotConstructed = errors.New(
	"SetVehicleMaintenanceCommand must be created via NewSetVehicleMaintenanceCommand constructor",
)

// SetVehicleMaintenanceCommand takes a vehicle out of service or returns it.
type SetVehicleMaintenanceCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	on        bool

	guard guard.ConstructorGuard
}

func NewSetVehicleMaintenanceCommand(vehicleID kernel.UUID, on bool) (SetVehicleMaintenanceCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return SetVehicleMaintenanceCommand{}, err
	}

	return SetVehicleMaintenanceCommand{
		vehicleID: vehicleID,
		on:        on,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetVehicleMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrSetVehicleMaintenanceCommandIsNotConstructed)
}

func (c SetVehicleMaintenanceCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c SetVehicleMaintenanceCommand) On() bool {
	return c.on
}
