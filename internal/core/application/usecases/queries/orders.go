package queries

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// dispatchableStatuses is the SQL form of order.Status.IsDispatchable.
func dispatchableStatuses() any {
	return pq.Array([]string{
		order.Validated.String(),
		order.InPreparation.String(),
		order.Invoiced.String(),
	})
}

// OrderSummary is one row of the order pool listings.
type OrderSummary struct {
	ID            kernel.UUID
	ClientID      kernel.UUID
	ZoneID        string
	Status        string
	ApprovedUnits int
	FinalTotal    kernel.Money
	ValidatedAt   *time.Time
}

type orderSummaryRow struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ZoneID        string
	Status        string
	ApprovedUnits int
	FinalTotal    int64
	ValidatedAt   *time.Time
}

const orderSummarySelect = `
	SELECT
		o.id,
		o.client_id,
		o.zone_id,
		o.status,
		COALESCE((SELECT SUM(v.approved_quantity) FROM validation_results v WHERE v.order_id = o.id), 0)::bigint AS approved_units,
		o.final_total,
		o.validated_at
	FROM orders o
`

func (r orderSummaryRow) toSummary() (OrderSummary, error) {
	id, err := kernel.UUIDFromGoogle(r.ID)
	if err != nil {
		return OrderSummary{}, err
	}
	clientID, err := kernel.UUIDFromGoogle(r.ClientID)
	if err != nil {
		return OrderSummary{}, err
	}
	return OrderSummary{
		ID:            id,
		ClientID:      clientID,
		ZoneID:        r.ZoneID,
		Status:        r.Status,
		ApprovedUnits: r.ApprovedUnits,
		FinalTotal:    kernel.Money(r.FinalTotal),
		ValidatedAt:   r.ValidatedAt,
	}, nil
}

func toSummaries(rows []orderSummaryRow) ([]OrderSummary, error) {
	out := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		s, err := row.toSummary()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
