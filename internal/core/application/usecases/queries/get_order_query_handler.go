package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderHeaderRow struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ZoneID        string
	Status        string
	ApprovedUnits int
	FinalTotal    int64
	ValidatedAt   *time.Time
	SellerID      uuid.UUID
	PaymentTerm   string
	Subtotal      int64
	DiscountTotal int64
	TaxTotal      int64
	CreatedAt     time.Time
	Version       int
}

type orderLineRow struct {
	ID                uuid.UUID
	SKU               string
	RequestedQuantity int
	UnitOfMeasure     string
	ListPrice         int64
	FinalPrice        int64
	LineSubtotal      int64
	Disposition       *string
	ApprovedQuantity  *int
	SubstituteSKU     *string
	Reason            *string
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var header orderHeaderRow
	res := db.Raw(`
		SELECT
			o.id, o.client_id, o.zone_id, o.status,
			COALESCE((SELECT SUM(v.approved_quantity) FROM validation_results v WHERE v.order_id = o.id), 0)::bigint AS approved_units,
			o.final_total, o.validated_at,
			o.seller_id, o.payment_term, o.subtotal, o.discount_total, o.tax_total, o.created_at, o.version
		FROM orders o
		WHERE o.id = ?
	`, id).Scan(&header)
	if res.Error != nil {
		return OrderView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var lines []orderLineRow
	err := db.Raw(`
		SELECT
			l.id, l.sku, l.requested_quantity, l.unit_of_measure,
			l.list_price, l.final_price, l.line_subtotal,
			v.disposition, v.approved_quantity, v.substitute_sku, v.reason
		FROM order_lines l
		LEFT JOIN validation_results v ON v.line_id = l.id
		WHERE l.order_id = ?
		ORDER BY l.position
	`, id).Scan(&lines).Error
	if err != nil {
		return OrderView{}, err
	}

	summary, err := orderSummaryRow{
		ID:            header.ID,
		ClientID:      header.ClientID,
		ZoneID:        header.ZoneID,
		Status:        header.Status,
		ApprovedUnits: header.ApprovedUnits,
		FinalTotal:    header.FinalTotal,
		ValidatedAt:   header.ValidatedAt,
	}.toSummary()
	if err != nil {
		return OrderView{}, err
	}
	sellerID, err := kernel.UUIDFromGoogle(header.SellerID)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		OrderSummary:  summary,
		SellerID:      sellerID,
		PaymentTerm:   header.PaymentTerm,
		Subtotal:      kernel.Money(header.Subtotal),
		DiscountTotal: kernel.Money(header.DiscountTotal),
		TaxTotal:      kernel.Money(header.TaxTotal),
		CreatedAt:     header.CreatedAt,
		Version:       header.Version,
		Lines:         make([]OrderLineView, 0, len(lines)),
	}
	for _, l := range lines {
		lineID, idErr := kernel.UUIDFromGoogle(l.ID)
		if idErr != nil {
			return OrderView{}, idErr
		}
		line := OrderLineView{
			ID:                lineID,
			SKU:               l.SKU,
			RequestedQuantity: l.RequestedQuantity,
			UnitOfMeasure:     l.UnitOfMeasure,
			ListPrice:         kernel.Money(l.ListPrice),
			FinalPrice:        kernel.Money(l.FinalPrice),
			Subtotal:          kernel.Money(l.LineSubtotal),
		}
		if l.Disposition != nil {
			line.Resolution = &ResolutionView{
				Disposition:      *l.Disposition,
				ApprovedQuantity: deref(l.ApprovedQuantity),
				SubstituteSKU:    deref(l.SubstituteSKU),
				Reason:           deref(l.Reason),
			}
		}
		view.Lines = append(view.Lines, line)
	}

	return view, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
