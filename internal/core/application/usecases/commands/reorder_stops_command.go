package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReorderStopsCommandIsNotConstructed = errors.New(
	"ReorderStopsCommand must be created via NewReorderStopsCommand constructor",
)

// ReorderStopsCommand carries the full new stop sequence as order IDs.
// Whether it is a permutation of the route's stops is decided by the route.
type ReorderStopsCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	sequence []kernel.UUID

	guard guard.ConstructorGuard
}

func NewReorderStopsCommand(routeID kernel.UUID, sequence []kernel.UUID) (ReorderStopsCommand, error) {
	if err := routeID.Validate(); err != nil {
		return ReorderStopsCommand{}, errs.NewValueIsRequiredErrorWithCause("routeId", err)
	}
	if len(sequence) == 0 {
		return ReorderStopsCommand{}, errs.NewValueIsRequiredError("orderIds")
	}

	return ReorderStopsCommand{
		routeID:  routeID,
		sequence: append([]kernel.UUID(nil), sequence...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderStopsCommand) Validate() error {
	return c.guard.Validate(ErrReorderStopsCommandIsNotConstructed)
}

func (c ReorderStopsCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c ReorderStopsCommand) Sequence() []kernel.UUID {
	return append([]kernel.UUID(nil), c.sequence...)
}
