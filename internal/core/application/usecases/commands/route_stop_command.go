package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRouteStopCommandIsNotConstructed = errors.New(
	"RouteStopCommand must be created via NewRouteStopCommand constructor",
)

// RouteStopCommand names one order on one route. AddStop and RemoveStop
// share it.
type RouteStopCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRouteStopCommand(routeID, orderID kernel.UUID) (RouteStopCommand, error) {
	var errList []error
	if err := routeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("routeId", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if len(errList) > 0 {
		return RouteStopCommand{}, errors.Join(errList...)
	}

	return RouteStopCommand{
		routeID: routeID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RouteStopCommand) Validate() error {
	return c.guard.Validate(ErrRouteStopCommandIsNotConstructed)
}

func (c RouteStopCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c RouteStopCommand) OrderID() kernel.UUID {
	return c.orderID
}
