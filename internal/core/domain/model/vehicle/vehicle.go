package vehicle

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPlateIsRequired         = errs.NewValueIsRequiredError("plate")
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is the single authoritative row of a fleet unit. A vehicle is
// reserved by at most one route at a time; the reservation is written in the
// same transaction as the route transition that causes it.
type Vehicle struct {
	kernel.Versioned
	history.Recorder

	id       kernel.UUID
	plate    string
	capacity int
	status   Status
	routeID  *kernel.UUID
	loads    []Load

	guard guard.ConstructorGuard
}

func NewVehicle(id kernel.UUID, plate string, capacity int, at time.Time) (*Vehicle, error) {
	v := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	v.record("registered", Unknown, Available, plate, at)
	return v, nil
}

func RestoreVehicle(
	id kernel.UUID,
	plate string,
	capacity int,
	status Status,
	routeID *kernel.UUID,
	loads []Load,
	version int,
) (*Vehicle, error) {
	v := &Vehicle{
		Versioned: kernel.RestoreVersioned(version),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if status == Assigned && routeID == nil {
		return nil, errs.NewValueIsRequiredError("routeId")
	}

	v.status = status
	v.routeID = routeID
	v.loads = append([]Load(nil), loads...)
	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Plate() string {
	return v.plate
}

func (v *Vehicle) Capacity() int {
	return v.capacity
}

func (v *Vehicle) Status() Status {
	return v.status
}

// RouteID is the route holding the reservation, nil unless Assigned.
func (v *Vehicle) RouteID() *kernel.UUID {
	return v.routeID
}

func (v *Vehicle) Loads() []Load {
	out := make([]Load, len(v.loads))
	copy(out, v.loads)
	return out
}

// LoadedUnits is the capacity in use.
func (v *Vehicle) LoadedUnits() int {
	return totalUnits(v.loads)
}

// IsAvailable reports whether a draft route may name this vehicle.
func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// Reserve assigns the vehicle to routeID carrying loads. Reserving again for
// the same route is a no-op.
func (v *Vehicle) Reserve(routeID kernel.UUID, loads []Load, at time.Time) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	if v.status == Assigned && v.routeID != nil && v.routeID.IsEqual(routeID) {
		return nil
	}
	if v.status != Available {
		return v.unavailable()
	}
	if units := totalUnits(loads); units > v.capacity {
		return errs.NewPreconditionError(errs.CodeVehicleCapacityExceeded, "vehicle", v.id.String()).
			WithField("capacity").
			WithState(fmt.Sprintf("%d units", units), fmt.Sprintf("at most %d units", v.capacity))
	}

	from := v.status
	v.status = Assigned
	v.routeID = &routeID
	v.loads = append([]Load(nil), loads...)
	v.record("reserved", from, Assigned, "route "+routeID.String(), at)
	return nil
}

// Unload returns the capacity of one order, delivered or cancelled. Unloading
// an order that is not aboard is a no-op.
func (v *Vehicle) Unload(orderID kernel.UUID, at time.Time) error {
	if v.status != Assigned {
		return errs.NewPreconditionError(errs.CodeVehicleNotReserved, "vehicle", v.id.String()).
			WithState(v.status.String(), Assigned.String())
	}
	for i, l := range v.loads {
		if l.OrderID.IsEqual(orderID) {
			v.loads = append(v.loads[:i:i], v.loads[i+1:]...)
			v.record("unloaded", v.status, v.status, "order "+orderID.String(), at)
			return nil
		}
	}
	return nil
}

// Release ends the reservation held by routeID. Releasing an available
// vehicle, or one reserved by another route, is a no-op.
func (v *Vehicle) Release(routeID kernel.UUID, at time.Time) error {
	if v.status != Assigned || v.routeID == nil || !v.routeID.IsEqual(routeID) {
		return nil
	}
	v.status = Available
	v.routeID = nil
	v.loads = nil
	v.record("released", Assigned, Available, "route "+routeID.String(), at)
	return nil
}

// SetMaintenance moves an available vehicle into maintenance or back.
func (v *Vehicle) SetMaintenance(on bool, at time.Time) error {
	switch {
	case on && v.status == Maintenance, !on && v.status == Available:
		return nil
	case on && v.status == Available:
		v.status = Maintenance
		v.record("maintenance_started", Available, Maintenance, "", at)
		return nil
	case !on && v.status == Maintenance:
		v.status = Available
		v.record("maintenance_finished", Maintenance, Available, "", at)
		return nil
	}
	return v.unavailable()
}

func (v *Vehicle) unavailable() error {
	return errs.NewPreconditionError(errs.CodeVehicleUnavailable, "vehicle", v.id.String()).
		WithState(v.status.String(), Available.String())
}

func (v *Vehicle) record(event string, from, to Status, note string, at time.Time) {
	fromName := from.String()
	if from == Unknown {
		fromName = ""
	}
	v.Record(history.Entry{
		EntityType: history.EntityVehicle,
		EntityID:   v.id,
		Event:      event,
		From:       fromName,
		To:         to.String(),
		Note:       note,
		At:         at,
	})
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}
