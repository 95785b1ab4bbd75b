package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes one transaction. Transitions recorded by the aggregates
// saved through its repositories are written to the history log in the same
// transaction and published after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	RouteRepository() RouteRepository

	DeliveryRepository() DeliveryRepository

	VehicleRepository() VehicleRepository
}
