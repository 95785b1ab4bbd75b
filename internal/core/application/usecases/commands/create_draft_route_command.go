package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDraftRouteCommandIsNotConstructed = errors.New(
	"CreateDraftRouteCommand must be created via NewCreateDraftRouteCommand constructor",
)

// CreateDraftRouteCommand opens an empty route for one driver, vehicle and
// day. The scheduled date keeps only its calendar day, in UTC.
type CreateDraftRouteCommand struct { //nolint:recvcheck //using for validation
	routeID       kernel.UUID
	driverID      kernel.UUID
	vehicleID     kernel.UUID
	zoneID        string
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

func NewCreateDraftRouteCommand(
	routeID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	zoneID string,
	scheduledDate time.Time,
) (CreateDraftRouteCommand, error) {
	var errList []error
	if err := routeID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := driverID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("driverId", err))
	}
	if err := vehicleID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("vehicleId", err))
	}
	if zoneID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("zoneId"))
	}
	if scheduledDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("scheduledDate"))
	}
	if len(errList) > 0 {
		return CreateDraftRouteCommand{}, errors.Join(errList...)
	}

	y, m, d := scheduledDate.Date()
	return CreateDraftRouteCommand{
		routeID:       routeID,
		driverID:      driverID,
		vehicleID:     vehicleID,
		zoneID:        zoneID,
		scheduledDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDraftRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftRouteCommandIsNotConstructed)
}

func (c CreateDraftRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c CreateDraftRouteCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDraftRouteCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateDraftRouteCommand) ZoneID() string {
	return c.zoneID
}

func (c CreateDraftRouteCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}
