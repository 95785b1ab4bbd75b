package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetRouteQueryIsNotConstructed = errors.New(
		"GetRouteQuery must be created via NewGetRouteQuery constructor",
	)
)

// GetRouteQuery loads a route with all of its stops, released ones included.
type GetRouteQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}
	return GetRouteQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

type RouteView struct {
	ID            kernel.UUID
	DriverID      kernel.UUID
	VehicleID     kernel.UUID
	ZoneID        string
	ScheduledDate time.Time
	Status        string
	CancelReason  string
	CreatedAt     time.Time
	Version       int
	Stops         []StopView
}

type StopView struct {
	OrderID  kernel.UUID
	Position int
	Released bool
}
