package ports

import (
	"context"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
)

// CatalogClient answers active-SKU checks. Failures are returned as
// *errs.DependencyUnavailableError.
type CatalogClient interface {
	ActiveSKUs(ctx context.Context, skus []string) (map[string]bool, error)
}

// DriverDirectory resolves driver identities for route creation.
type DriverDirectory interface {
	DriverExists(ctx context.Context, driverID kernel.UUID) (bool, error)
}

// EventPublisher emits one event per committed transition. Publishing is
// fire-and-forget: implementations log failures and never return them to
// the workflow.
type EventPublisher interface {
	Publish(ctx context.Context, entries []history.Entry)
}
