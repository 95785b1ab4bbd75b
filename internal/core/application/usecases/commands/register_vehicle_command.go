package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand adds a vehicle of the fleet as available.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	plate     string
	capacity  int

	guard guard.ConstructorGuard
}

func NewRegisterVehicleCommand(vehicleID kernel.UUID, plate string, capacity int) (RegisterVehicleCommand, error) {
	var errList []error
	if err := vehicleID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if plate == "" {
		errList = append(errList, errs.NewValueIsRequiredError("plate"))
	}
	if capacity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("capacity", capacity, 1, "unbounded"))
	}
	if len(errList) > 0 {
		return RegisterVehicleCommand{}, errors.Join(errList...)
	}

	return RegisterVehicleCommand{
		vehicleID: vehicleID,
		plate:     plate,
		capacity:  capacity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c RegisterVehicleCommand) Plate() string {
	return c.plate
}

func (c RegisterVehicleCommand) Capacity() int {
	return c.capacity
}
