package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	GetByIncident(ctx context.Context, incidentID kernel.UUID) (*delivery.Delivery, error)

	GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*delivery.Delivery, error)
}
