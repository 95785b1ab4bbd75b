package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
