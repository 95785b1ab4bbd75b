package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
)

type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error

	Update(ctx context.Context, aggregate *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// FindActiveByOrder returns the non-cancelled route holding orderID on an
	// unreleased stop, or nil.
	FindActiveByOrder(ctx context.Context, orderID kernel.UUID) (*route.Route, error)
}
