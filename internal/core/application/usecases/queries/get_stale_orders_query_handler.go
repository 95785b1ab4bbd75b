package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetStaleOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetStaleOrdersQueryHandler(db *gorm.DB) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{db: db}
}

// Handle lists stale orders whether or not a draft route already holds
// them: only a started route takes an order out of the report.
func (h GetStaleOrdersQueryHandler) Handle(ctx context.Context, query GetStaleOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderSummaryRow
	err := h.db.WithContext(ctx).Raw(orderSummarySelect+`
		WHERE o.status = ANY(?)
			AND o.validated_at < ?
		ORDER BY o.validated_at, o.id
	`, dispatchableStatuses(), query.Cutoff()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toSummaries(rows)
}
