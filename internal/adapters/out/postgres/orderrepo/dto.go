package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID `gorm:"type:uuid;index"`
	SellerID      uuid.UUID `gorm:"type:uuid"`
	ZoneID        string    `gorm:"index"`
	PaymentTerm   string
	Status        string `gorm:"index"`
	Subtotal      int64
	DiscountTotal int64
	TaxTotal      int64
	FinalTotal    int64
	CreatedAt     time.Time
	ValidatedAt   *time.Time
	Version       int
	Lines         []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Resolutions   []ResolutionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LineDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	Position          int
	SKU               string
	RequestedQuantity int
	UnitOfMeasure     string
	ListPrice         int64
	FinalPrice        int64
	LineSubtotal      int64
}

func (LineDTO) TableName() string {
	return "order_lines"
}

type ResolutionDTO struct {
	LineID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Disposition      string
	ApprovedQuantity int
	SubstituteSKU    string
	Reason           string
}

func (ResolutionDTO) TableName() string {
	return "validation_results"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Bytes(),
		ClientID:      o.ClientID().Bytes(),
		SellerID:      o.SellerID().Bytes(),
		ZoneID:        o.ZoneID(),
		PaymentTerm:   o.PaymentTerm(),
		Status:        o.Status().String(),
		Subtotal:      int64(o.Subtotal()),
		DiscountTotal: int64(o.DiscountTotal()),
		TaxTotal:      int64(o.TaxTotal()),
		FinalTotal:    int64(o.FinalTotal()),
		CreatedAt:     o.CreatedAt(),
		ValidatedAt:   o.ValidatedAt(),
		Version:       o.Version(),
	}

	for i, l := range o.Lines() {
		dto.Lines = append(dto.Lines, LineDTO{
			ID:                l.ID().Bytes(),
			OrderID:           dto.ID,
			Position:          i + 1,
			SKU:               l.SKU(),
			RequestedQuantity: l.RequestedQuantity(),
			UnitOfMeasure:     l.UnitOfMeasure(),
			ListPrice:         int64(l.ListPrice()),
			FinalPrice:        int64(l.FinalPrice()),
			LineSubtotal:      int64(l.Subtotal()),
		})
	}
	dto.Resolutions = resolutionsFromDomain(dto.ID, o.Resolutions())
	return dto
}

func resolutionsFromDomain(orderID uuid.UUID, resolutions []order.Resolution) []ResolutionDTO {
	out := make([]ResolutionDTO, 0, len(resolutions))
	for _, r := range resolutions {
		out = append(out, ResolutionDTO{
			LineID:           r.LineID.Bytes(),
			OrderID:          orderID,
			Disposition:      string(r.Kind),
			ApprovedQuantity: r.ApprovedQuantity,
			SubstituteSKU:    r.SubstituteSKU,
			Reason:           r.Reason,
		})
	}
	return out
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromGoogle(dto.ClientID)
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromGoogle(dto.SellerID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromGoogle(l.ID)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := order.NewLine(lineID, l.SKU, l.RequestedQuantity, l.UnitOfMeasure,
			kernel.Money(l.ListPrice), kernel.Money(l.FinalPrice))
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	resolutions := make([]order.Resolution, 0, len(dto.Resolutions))
	for _, r := range dto.Resolutions {
		lineID, resErr := kernel.UUIDFromGoogle(r.LineID)
		if resErr != nil {
			return nil, resErr
		}
		res, resErr := order.RestoreResolution(lineID, order.DispositionKind(r.Disposition),
			r.ApprovedQuantity, r.SubstituteSKU, r.Reason)
		if resErr != nil {
			return nil, resErr
		}
		resolutions = append(resolutions, res)
	}

	return order.RestoreOrder(
		id,
		clientID,
		sellerID,
		dto.ZoneID,
		dto.PaymentTerm,
		lines,
		kernel.Money(dto.DiscountTotal),
		kernel.Money(dto.TaxTotal),
		status,
		resolutions,
		dto.CreatedAt,
		dto.ValidatedAt,
		dto.Version,
	)
}
