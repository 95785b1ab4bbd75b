package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetEligibleOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetEligibleOrdersQueryHandler(db *gorm.DB) GetEligibleOrdersQueryHandler {
	return GetEligibleOrdersQueryHandler{db: db}
}

// Handle returns the pool oldest validation first.
func (h GetEligibleOrdersQueryHandler) Handle(ctx context.Context, query GetEligibleOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderSummaryRow
	err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.status = ANY(?)
			AND (? = '' OR o.zone_id = ?)
			AND NOT EXISTS (SELECT 1 FROM stops s WHERE s.order_id = o.id AND s.active)
		ORDER BY o.validated_at, o.id
	`, dispatchableStatuses(), query.ZoneID(), query.ZoneID()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toSummaries(rows)
}
