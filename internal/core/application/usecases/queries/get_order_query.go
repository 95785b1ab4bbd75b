package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the full order with each line's validation outcome, if any.
type OrderView struct {
	OrderSummary
	SellerID      kernel.UUID
	PaymentTerm   string
	Subtotal      kernel.Money
	DiscountTotal kernel.Money
	TaxTotal      kernel.Money
	CreatedAt     time.Time
	Version       int
	Lines         []OrderLineView
}

type OrderLineView struct {
	ID                kernel.UUID
	SKU               string
	RequestedQuantity int
	UnitOfMeasure     string
	ListPrice         kernel.Money
	FinalPrice        kernel.Money
	Subtotal          kernel.Money
	Resolution        *ResolutionView
}

type ResolutionView struct {
	Disposition      string
	ApprovedQuantity int
	SubstituteSKU    string
	Reason           string
}
