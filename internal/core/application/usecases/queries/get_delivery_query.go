package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
	ErrGetRouteDeliveriesQueryIsNotConstructed = errors.New(
		"GetRouteDeliveriesQuery must be created via NewGetRouteDeliveriesQuery constructor",
	)
)

type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetRouteDeliveriesQuery lists the deliveries of a started route in stop
// order. A route that has not started has none.
type GetRouteDeliveriesQuery struct {
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRouteDeliveriesQuery(routeID kernel.UUID) (GetRouteDeliveriesQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteDeliveriesQuery{}, err
	}
	return GetRouteDeliveriesQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteDeliveriesQueryIsNotConstructed)
}

func (q GetRouteDeliveriesQuery) RouteID() kernel.UUID {
	return q.routeID
}

type DeliveryView struct {
	ID             kernel.UUID
	RouteID        kernel.UUID
	OrderID        kernel.UUID
	DriverID       kernel.UUID
	StopOrder      int
	Status         string
	Reason         string
	Observations   string
	DeliveredLines []DeliveredLineView
	DepartedAt     *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	Version        int
	Evidences      []EvidenceView
	Incidents      []IncidentView
}

type DeliveredLineView struct {
	LineID   string `json:"lineId"`
	Quantity int    `json:"quantity"`
}

type EvidenceView struct {
	ID         kernel.UUID
	Kind       string
	URL        string
	Hash       string
	SizeBytes  int64
	CapturedAt time.Time
}

type IncidentView struct {
	ID          kernel.UUID
	Kind        string
	Description string
	ReportedAt  time.Time
	Resolved    bool
	Resolution  string
	ResolvedAt  *time.Time
}
