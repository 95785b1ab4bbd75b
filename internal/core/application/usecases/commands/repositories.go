// Package commands contains business operations that modify system state.
// Every command is a guarded value object built by its constructor; its
// handler opens a unit of work, loads the aggregates, lets the domain decide
// and saves every aggregate it touched before committing.
package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// VehicleUoW manages transactions for fleet operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// UoW spans every aggregate. Route and delivery workflows use it because
	// a single transition may move an order, a route, deliveries and a
	// vehicle together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RouteRepository().Get(ctx, routeID)
	//   v, err := uow.VehicleRepository().Get(ctx, r.VehicleID())
	//   // ... let the coordinator decide, then Update both
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RouteRepoFactory
		DeliveryRepoFactory
		VehicleRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

func now() time.Time {
	return time.Now().UTC()
}
